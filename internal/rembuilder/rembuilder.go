// Package rembuilder generates CNAB240 PIX remittance (.REM) files for Banco
// Inter. Each builder produces exactly one 240-character record; GenerateFile
// sequences them into the complete batch.
//
// Field widths follow the bank's layout manual (file layout 107, PIX batch
// layout 046). Oversized values are truncated by the fixed-width formatters
// rather than rejected, so the output stays column-aligned no matter what the
// caller supplies.
package rembuilder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cnab240-pix/internal/currencyutils"
	"cnab240-pix/internal/dateutils"
	"cnab240-pix/internal/layout"
	"cnab240-pix/internal/logging"
	"cnab240-pix/internal/models"
	"cnab240-pix/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Options controls file generation.
type Options struct {
	// StrictAmounts rejects malformed payment amounts instead of encoding
	// them as zero.
	StrictAmounts bool
	// Now supplies the file-generation timestamp written to the file
	// header. Defaults to time.Now.
	Now func() time.Time
}

// BuildFileHeader builds the file header record. The generation timestamp is
// taken from now at build time.
func BuildFileHeader(c models.Company, now time.Time) string {
	seq := c.Sequencial
	if seq == "" {
		seq = "1"
	}
	r := &layout.Record{}
	r.Numeric(models.BankCode, 3).
		Numeric("0000", 4).
		Literal("0"). // record type: file header
		Blank(9).
		Literal("2"). // company document type: CNPJ
		Numeric(c.CNPJ, 14).
		Blank(20).
		Numeric(c.Agencia, 5).
		Alfa(c.AgenciaDV, 1).
		Numeric(c.Conta, 12).
		Numeric(c.ContaDV, 1).
		Blank(1).
		Alfa(c.NomeEmpresa, 30).
		Alfa(models.BankName, 30).
		Blank(10).
		Literal("1"). // remittance file
		Literal(dateutils.FormatCNABDate(now)).
		Literal(dateutils.FormatCNABTime(now)).
		Numeric(seq, 6).
		Numeric(models.FileLayoutVersion, 3).
		Numeric(models.RecordingDensity, 5).
		Blank(20). // reserved for the bank
		Blank(20). // reserved for the company
		Blank(29)
	return r.String()
}

// BuildBatchHeader builds the PIX batch header record.
func BuildBatchHeader(c models.Company) string {
	r := &layout.Record{}
	r.Numeric(models.BankCode, 3).
		Numeric("1", 4).
		Literal("1"). // record type: batch header
		Literal("C"). // operation: credit
		Numeric("00", 2).
		Numeric(models.LaunchFormPix, 2).
		Numeric(models.BatchLayoutVersion, 3).
		Blank(1).
		Literal("2"). // company document type: CNPJ
		Numeric(c.CNPJ, 14).
		Blank(20).
		Numeric(c.Agencia, 5).
		Alfa(c.AgenciaDV, 1).
		Numeric(c.Conta, 12).
		Numeric(c.ContaDV, 1).
		Blank(1).
		Alfa(c.NomeEmpresa, 30).
		Alfa(c.Generica, 40).
		Alfa(c.Rua, 30).
		Numeric(c.Numero, 5).
		Alfa(c.Complemento, 15).
		Alfa(c.Cidade, 20).
		Numeric(c.CEP, 5).
		Blank(3). // CEP suffix
		Alfa(c.Estado, 2).
		Blank(8).
		Blank(10) // return occurrences
	return r.String()
}

// BuildSegmentA builds the Segment A detail record carrying the payment
// amount and date. seq is the detail sequence number within the batch and
// valor the already-parsed payment amount.
func BuildSegmentA(t models.Transaction, seq int, valor decimal.Decimal) string {
	r := &layout.Record{}
	r.Numeric(models.BankCode, 3).
		Numeric("1", 4).
		Literal("3"). // record type: detail
		Numeric(strconv.Itoa(seq), 5).
		Literal("A").
		Literal("0"). // movement type: inclusion
		Numeric("00", 2).
		Numeric("000", 3) // clearing house

	// Beneficiary block, 53 characters. Only bank-detail payments carry
	// banking data here; key-addressed payments get the fixed placeholder.
	if t.FormaIniciacao.UsesBankDetails() {
		r.Numeric(t.FavBanco, 3).
			Numeric(t.FavAgencia, 5).
			Alfa(t.FavAgenciaDV, 1).
			Numeric(t.FavConta, 12).
			Alfa(t.FavContaDV, 1).
			Blank(1).
			Alfa(t.FavNome, 30)
	} else {
		r.Literal("000").
			Literal("00000").
			Blank(1).
			Zeros(12).
			Blank(1).
			Blank(30).
			Blank(1)
	}

	r.Alfa(t.DocEmpresa, 20).
		Literal(dateutils.FormatCNABDate(t.DataPagamento)).
		Alfa(models.CurrencyBRL, 3).
		Numeric("0", 15). // currency quantity
		Numeric(strconv.FormatInt(currencyutils.ToCents(valor), 10), 15).
		Blank(20). // bank document number, return only
		Blank(8).  // effective date, return only
		Blank(15). // effective value, return only
		Blank(22).
		Numeric(models.DefaultAccountType, 2).
		Blank(18).
		Numeric(models.DefaultFinality, 5).
		Blank(6).
		Blank(10) // return occurrences
	return r.String()
}

// BuildSegmentB builds the Segment B detail record carrying the PIX
// identification data.
func BuildSegmentB(t models.Transaction, seq int) string {
	r := &layout.Record{}
	r.Numeric(models.BankCode, 3).
		Numeric("1", 4).
		Literal("3"). // record type: detail
		Numeric(strconv.Itoa(seq), 5).
		Literal("B").
		Alfa(t.FormaIniciacao.String(), 3).
		Numeric(t.TipoDocFav, 1).
		Numeric(t.DocFav, 14).
		Alfa(t.TxID, 35).
		Blank(60)

	// The 99-character key field is only meaningful for key-addressed
	// payments; any stray ChavePix on other types is dropped.
	if t.FormaIniciacao.UsesPixKey() {
		r.Alfa(t.ChavePix, 99)
	} else {
		r.Blank(99)
	}

	r.Blank(6)
	if t.FavISPB != "" {
		r.Numeric(t.FavISPB, 8)
	} else {
		r.Numeric("0", 8)
	}
	return r.String()
}

// BuildBatchTrailer builds the batch trailer. The record count covers the
// batch header, both detail records per transaction and the trailer itself.
func BuildBatchTrailer(nTransactions int, total decimal.Decimal) string {
	r := &layout.Record{}
	r.Numeric(models.BankCode, 3).
		Numeric("1", 4).
		Literal("5"). // record type: batch trailer
		Blank(9).
		Numeric(strconv.Itoa(2*nTransactions+2), 6).
		Numeric(strconv.FormatInt(currencyutils.ToCents(total), 10), 18).
		Numeric("0", 18). // currency quantity total
		Blank(6).         // debit notice number
		Blank(165).
		Blank(10) // return occurrences
	return r.String()
}

// BuildFileTrailer builds the file trailer.
func BuildFileTrailer(totalBatches, totalRecords int) string {
	r := &layout.Record{}
	r.Numeric(models.BankCode, 3).
		Numeric("9999", 4).
		Literal("9"). // record type: file trailer
		Blank(9).
		Numeric(strconv.Itoa(totalBatches), 6).
		Numeric(strconv.Itoa(totalRecords), 6)
	return r.String()
}

// GenerateFile assembles the complete remittance payload: file header, batch
// header, one Segment A and Segment B pair per transaction, batch trailer and
// file trailer, joined with "\n". The detail sequence counter starts at 1 and
// advances once per record, so each transaction's A and B records are
// consecutive.
func GenerateFile(c models.Company, transactions []models.Transaction, opts Options) (string, error) {
	return GenerateFileWithLogger(c, transactions, opts, nil)
}

// GenerateFileWithLogger is GenerateFile with an explicit logger.
func GenerateFileWithLogger(c models.Company, transactions []models.Transaction, opts Options, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logger.Info("Generating CNAB240 PIX remittance",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	lines := make([]string, 0, 2*len(transactions)+4)
	lines = append(lines, BuildFileHeader(c, now()))
	lines = append(lines, BuildBatchHeader(c))

	seq := 1
	total := decimal.Zero
	for i, t := range transactions {
		valor, err := currencyutils.ParseValorStrict(t.ValorPagamento)
		if err != nil {
			if opts.StrictAmounts {
				return "", &parsererror.AmountError{Index: i + 1, Value: t.ValorPagamento, Err: err}
			}
			logger.WithError(err).Warn("Unparseable payment amount encoded as zero",
				logging.Field{Key: logging.FieldSequence, Value: seq})
			valor = decimal.Zero
		}

		lines = append(lines, BuildSegmentA(t, seq, valor))
		seq++
		lines = append(lines, BuildSegmentB(t, seq))
		seq++
		total = total.Add(valor)
	}

	lines = append(lines, BuildBatchTrailer(len(transactions), total))
	lines = append(lines, BuildFileTrailer(1, 2*len(transactions)+4))

	logger.Info("Remittance generated",
		logging.Field{Key: logging.FieldCount, Value: len(lines)})
	return strings.Join(lines, "\n"), nil
}

// FileName returns the bank's expected remittance file name for a company,
// CI240_001_NNNN.rem, where NNNN is the 4-digit file sequence.
func FileName(c models.Company) string {
	seq := c.Sequencial
	if seq == "" {
		seq = "1"
	}
	return fmt.Sprintf("CI240_001_%s.rem", layout.PadNumeric(seq, 4))
}
