// Package currencyutils handles the monetary formats of the PIX batch layout:
// operator-entered amounts with a comma decimal separator, and wire amounts
// expressed as zero-padded integer cents.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseValor parses an amount string in Brazilian entry format ("1234,56").
// A plain decimal point is also accepted. Empty or malformed input yields
// zero without error; remittances have historically been generated
// best-effort, so strict rejection lives in ParseValorStrict.
func ParseValor(valor string) decimal.Decimal {
	d, err := ParseValorStrict(valor)
	if err != nil {
		log.WithError(err).WithField("valor", valor).Warn("Unparseable amount treated as zero")
		return decimal.Zero
	}
	return d
}

// ParseValorStrict parses an amount string and surfaces malformed input as an
// error instead of degrading to zero.
func ParseValorStrict(valor string) (decimal.Decimal, error) {
	s := strings.TrimSpace(valor)
	if s == "" {
		return decimal.Zero, nil
	}
	// Dots are thousands separators only when a comma marks the decimals
	// ("1.234,56"); a lone dot is the decimal point ("1234.56").
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", valor, err)
	}
	return d, nil
}

// ToCents converts an amount to integer cents, rounding half away from zero.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CentsString converts a zero-padded integer-cents field back to a decimal
// amount. Unparseable content yields zero, mirroring the lenient encode path.
func CentsString(field string) decimal.Decimal {
	s := strings.TrimSpace(field)
	if s == "" {
		return decimal.Zero
	}
	cents, err := decimal.NewFromString(s)
	if err != nil {
		log.WithError(err).WithField("field", field).Warn("Unparseable cents field treated as zero")
		return decimal.Zero
	}
	return cents.Div(decimal.NewFromInt(100))
}

// FormatValor renders an amount back in entry format with a comma separator
// and two decimal places.
func FormatValor(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}
