package rembuilder

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cnab240-pix/internal/common"
	"cnab240-pix/internal/dateutils"
	"cnab240-pix/internal/fileutils"
	"cnab240-pix/internal/models"

	"gopkg.in/yaml.v3"
)

// TransactionCSVRow represents a single row of the operator-supplied batch
// CSV. It uses struct tags for gocsv unmarshaling; dates and codes arrive as
// text and are validated during conversion.
type TransactionCSVRow struct {
	DataPagamento  string `csv:"data_pagamento"`
	ValorPagamento string `csv:"valor_pagamento"`
	DocEmpresa     string `csv:"doc_empresa"`
	FormaIniciacao string `csv:"forma_iniciacao"`
	FavBanco       string `csv:"fav_banco"`
	FavAgencia     string `csv:"fav_agencia"`
	FavAgenciaDV   string `csv:"fav_agencia_dv"`
	FavConta       string `csv:"fav_conta"`
	FavContaDV     string `csv:"fav_conta_dv"`
	FavNome        string `csv:"fav_nome"`
	TipoDocFav     string `csv:"tipo_doc_fav"`
	DocFav         string `csv:"doc_fav"`
	TxID           string `csv:"txid"`
	ChavePix       string `csv:"chave_pix"`
	FavISPB        string `csv:"fav_ispb"`
}

// inputDateFormats are the payment-date formats accepted in batch CSVs.
var inputDateFormats = []string{
	dateutils.DateLayoutISO,
	"02/01/2006",
	dateutils.DateLayoutCNAB,
}

// LoadCompany reads a company profile from a YAML file.
func LoadCompany(filePath string) (models.Company, error) {
	var c models.Company
	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return c, fmt.Errorf("error reading company profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("error parsing company profile: %w", err)
	}
	return c, nil
}

// ReadTransactionsCSV reads a batch CSV and converts each row to a payment
// instruction. Rows with an unknown initiation code or unparseable date are
// rejected; width overflow of the remaining fields is handled by the encoder.
func ReadTransactionsCSV(filePath string) ([]models.Transaction, error) {
	rows, err := common.ReadCSVFile[TransactionCSVRow](filePath)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row.DataPagamento) == "" {
			continue
		}
		t, err := convertRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// convertRow converts a CSV row to a Transaction.
func convertRow(row TransactionCSVRow) (models.Transaction, error) {
	key, err := models.ParsePixKeyType(strings.TrimSpace(row.FormaIniciacao))
	if err != nil {
		return models.Transaction{}, err
	}

	date, err := parseInputDate(row.DataPagamento)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		DataPagamento:  date,
		ValorPagamento: strings.TrimSpace(row.ValorPagamento),
		DocEmpresa:     row.DocEmpresa,
		FormaIniciacao: key,
		FavBanco:       row.FavBanco,
		FavAgencia:     row.FavAgencia,
		FavAgenciaDV:   row.FavAgenciaDV,
		FavConta:       row.FavConta,
		FavContaDV:     row.FavContaDV,
		FavNome:        row.FavNome,
		TipoDocFav:     row.TipoDocFav,
		DocFav:         row.DocFav,
		TxID:           row.TxID,
		ChavePix:       row.ChavePix,
		FavISPB:        strings.TrimSpace(row.FavISPB),
	}, nil
}

// parseInputDate tries each accepted payment-date format in order.
func parseInputDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range inputDateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable payment date %q", s)
}

// WriteFile generates the remittance and writes it under outputDir with the
// bank's file naming convention, returning the written path.
func WriteFile(c models.Company, transactions []models.Transaction, outputDir string, opts Options) (string, error) {
	payload, err := GenerateFile(c, transactions, opts)
	if err != nil {
		return "", err
	}

	path := FileName(c)
	if outputDir != "" {
		path = filepath.Join(outputDir, path)
	}
	if err := fileutils.WriteFile(path, []byte(payload), 0644); err != nil {
		return "", err
	}
	return path, nil
}
