package retparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cnab240-pix/internal/currencyutils"
	"cnab240-pix/internal/layout"
	"cnab240-pix/internal/models"
	"cnab240-pix/internal/rembuilder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany() models.Company {
	return models.Company{
		CNPJ:        "12345678000190",
		Agencia:     "1",
		AgenciaDV:   "9",
		Conta:       "123456",
		ContaDV:     "0",
		NomeEmpresa: "ACME COMERCIO LTDA",
		Rua:         "RUA DAS FLORES",
		Numero:      "100",
		Cidade:      "BELO HORIZONTE",
		CEP:         "30140",
		Estado:      "MG",
		Sequencial:  "7",
	}
}

func testTransaction(valor string) models.Transaction {
	return models.Transaction{
		DataPagamento:  time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		ValorPagamento: valor,
		FormaIniciacao: models.KeyRandom,
		TipoDocFav:     "1",
		DocFav:         "98765432100",
		TxID:           "TX0001",
		ChavePix:       "test@pix.com",
	}
}

func generate(t *testing.T, valores ...string) string {
	t.Helper()
	txs := make([]models.Transaction, 0, len(valores))
	for _, v := range valores {
		txs = append(txs, testTransaction(v))
	}
	payload, err := rembuilder.GenerateFile(testCompany(), txs, rembuilder.Options{
		Now: func() time.Time { return time.Date(2026, time.August, 5, 14, 30, 45, 0, time.UTC) },
	})
	require.NoError(t, err)
	return payload
}

// markSettled fills the return-only effective date and value fields of a
// Segment A line the way the bank does when a payment clears.
func markSettled(line, date, cents string) string {
	b := []byte(line)
	copy(b[layout.FieldEffectiveDate.Start:], layout.PadNumeric(date, 8))
	copy(b[layout.FieldEffectiveValue.Start:], layout.PadNumeric(cents, 15))
	return string(b)
}

func TestParseRoundTrip(t *testing.T) {
	payload := generate(t, "1500,00", "99,90", "0,01")

	entries, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	wantValores := []string{"1500", "99.9", "0.01"}
	for i, entry := range entries {
		assert.True(t, entry.ValorNominal.Equal(decimal.RequireFromString(wantValores[i])),
			"entry %d: got %s, want %s", i, entry.ValorNominal, wantValores[i])
		assert.Equal(t, "15/09/2026", entry.DataPagamento)
		assert.Equal(t, models.StatusUnpaid, entry.Status)
	}

	assert.Equal(t, "00001", entries[0].Sequencia)
	assert.Equal(t, "00003", entries[1].Sequencia)
	assert.Equal(t, "00005", entries[2].Sequencia)
}

func TestParseRoundTripFormatsValor(t *testing.T) {
	payload := generate(t, "1500,00")

	entries, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1500,00", currencyutils.FormatValor(entries[0].ValorNominal))
}

func TestParseStatusDerivation(t *testing.T) {
	payload := generate(t, "1500,00")
	lines := strings.Split(payload, "\n")
	lines[2] = markSettled(lines[2], "16092026", "150000")

	entries, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, models.StatusPaid, entries[0].Status)
	assert.Equal(t, "16/09/2026", entries[0].DataEfetivada)
	assert.True(t, entries[0].ValorEfetivo.Equal(decimal.RequireFromString("1500")))
}

func TestParseAllZeroEffectiveDateIsUnpaid(t *testing.T) {
	payload := generate(t, "1500,00")
	lines := strings.Split(payload, "\n")
	lines[2] = markSettled(lines[2], "00000000", "000000000000000")

	entries, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.StatusUnpaid, entries[0].Status)
	assert.Empty(t, entries[0].DataEfetivada)
}

func TestParseSkipsNonSegmentALines(t *testing.T) {
	payload := generate(t, "1500,00", "99,90")
	lines := strings.Split(payload, "\n")
	// Corrupt one detail pair with a line that is neither header nor Segment A.
	lines[2] = "garbage that is not a CNAB record"

	entries, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].ValorNominal.Equal(decimal.RequireFromString("99.9")))
}

func TestParseTolerantOfShortAndBlankLines(t *testing.T) {
	payload := generate(t, "1500,00")
	lines := strings.Split(payload, "\n")
	// Trailing whitespace is often lost in transit; the parser must re-pad.
	lines[2] = strings.TrimRight(lines[2], " ")
	withBlanks := lines[0] + "\n\n" + strings.Join(lines[1:], "\r\n") + "\n"

	entries, err := Parse(strings.NewReader(withBlanks))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].ValorNominal.Equal(decimal.RequireFromString("1500")))
}

func TestParseBankDetailBeneficiary(t *testing.T) {
	tx := testTransaction("250,00")
	tx.FormaIniciacao = models.KeyBankDetails
	tx.ChavePix = ""
	tx.FavBanco = "341"
	tx.FavAgencia = "1234"
	tx.FavAgenciaDV = "5"
	tx.FavConta = "987654"
	tx.FavContaDV = "3"
	tx.FavNome = "FORNECEDOR XYZ"

	payload, err := rembuilder.GenerateFile(testCompany(), []models.Transaction{tx}, rembuilder.Options{})
	require.NoError(t, err)

	entries, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "341", entries[0].FavBanco)
	assert.Equal(t, "01234-5", entries[0].FavAgencia)
	assert.Equal(t, "000000987654-3", entries[0].FavConta)
	assert.Equal(t, "FORNECEDOR XYZ", entries[0].FavNome)
}

func TestParseEmptyInput(t *testing.T) {
	entries, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "SÃO PAULO", DecodeText([]byte("SÃO PAULO")))

	// "SÃO" in Latin-1: 0xC3 alone is invalid UTF-8, so the fallback kicks in.
	latin1 := []byte{'S', 0xC3, 'O', ' ', 'P', 'A', 'U', 'L', 'O'}
	assert.Equal(t, "SÃO PAULO", DecodeText(latin1))
}

func TestValidateFormat(t *testing.T) {
	dir := t.TempDir()

	remFile := filepath.Join(dir, "lote.ret")
	require.NoError(t, os.WriteFile(remFile, []byte(generate(t, "1500,00")), 0644))
	valid, err := ValidateFormat(remFile)
	require.NoError(t, err)
	assert.True(t, valid)

	badFile := filepath.Join(dir, "bad.ret")
	require.NoError(t, os.WriteFile(badFile, []byte("not a cnab file\n"), 0644))
	valid, err = ValidateFormat(badFile)
	require.NoError(t, err)
	assert.False(t, valid)

	emptyFile := filepath.Join(dir, "empty.ret")
	require.NoError(t, os.WriteFile(emptyFile, []byte("\n\n"), 0644))
	valid, err = ValidateFormat(emptyFile)
	assert.Error(t, err)
	assert.False(t, valid)
}

func TestConvertToCSV(t *testing.T) {
	dir := t.TempDir()
	retFile := filepath.Join(dir, "lote.ret")
	csvFile := filepath.Join(dir, "lote.csv")
	require.NoError(t, os.WriteFile(retFile, []byte(generate(t, "1500,00")), 0644))

	require.NoError(t, ConvertToCSV(retFile, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Valor Nominal (R$)")
	assert.Contains(t, content, "1500")
	assert.Contains(t, content, models.StatusUnpaid)
}

func TestBatchConvert(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "a.ret"), []byte(generate(t, "1500,00")), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "b.ret"), []byte(generate(t, "5,00")), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "skip.txt"), []byte("nope"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad.ret"), []byte("not cnab\n"), 0644))

	count, err := BatchConvert(inputDir, outputDir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, name := range []string{"a.csv", "b.csv"} {
		_, err := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, err, name)
	}
}
