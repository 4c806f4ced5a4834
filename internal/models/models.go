// Package models defines the data structures exchanged with the CNAB240
// codec: the remitting company profile, the PIX payment instructions of a
// batch, and the entries extracted from a bank return file.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is the remitter profile recorded in the file and batch headers.
// Field widths are enforced at encode time by the fixed-width formatters;
// values wider than the declared column are truncated, never rejected.
type Company struct {
	CNPJ        string `yaml:"cnpj"`
	Agencia     string `yaml:"agencia"`
	AgenciaDV   string `yaml:"agencia_dv"`
	Conta       string `yaml:"conta"`
	ContaDV     string `yaml:"conta_dv"`
	NomeEmpresa string `yaml:"nome_empresa"`
	Rua         string `yaml:"rua"`
	Numero      string `yaml:"numero"`
	Complemento string `yaml:"complemento"`
	Cidade      string `yaml:"cidade"`
	CEP         string `yaml:"cep"`
	Estado      string `yaml:"estado"`
	// Generica is the optional free-text field of the batch header.
	Generica string `yaml:"generica,omitempty"`
	// Sequencial numbers the remittance file itself (4 digits, used both in
	// the file header and in the .REM file name).
	Sequencial string `yaml:"sequencial"`
}

// Transaction is one PIX payment instruction. Each transaction becomes two
// detail records in the batch (Segment A and Segment B) with consecutive
// sequence numbers.
type Transaction struct {
	DataPagamento time.Time

	// ValorPagamento is the payment amount as entered, with a comma decimal
	// separator ("1234,56").
	ValorPagamento string
	DocEmpresa     string
	FormaIniciacao PixKeyType

	// Beneficiary bank details, used only when FormaIniciacao is
	// KeyBankDetails; ignored otherwise.
	FavBanco     string
	FavAgencia   string
	FavAgenciaDV string
	FavConta     string
	FavContaDV   string
	FavNome      string

	// TipoDocFav is 1 for CPF, 2 for CNPJ.
	TipoDocFav string
	DocFav     string
	TxID       string
	// ChavePix is the PIX key, used only for phone/e-mail/random key types.
	ChavePix string
	// FavISPB is the beneficiary institution code; "00000000" when absent.
	FavISPB string
}

// ReturnEntry is one settled (or rejected) payment extracted from a Segment A
// line of a bank return file. CSV headers mirror the labels of the original
// operator-facing report.
type ReturnEntry struct {
	Sequencia     string          `csv:"Sequência"`
	FavBanco      string          `csv:"Banco Favorecido"`
	FavAgencia    string          `csv:"Agência Favorecido"`
	FavConta      string          `csv:"Conta Favorecido"`
	FavNome       string          `csv:"Nome Favorecido"`
	DocEmpresa    string          `csv:"Nº Documento Empresa"`
	DataPagamento string          `csv:"Data Pagamento"`
	ValorNominal  decimal.Decimal `csv:"Valor Nominal (R$)"`
	DocBanco      string          `csv:"Nº Documento Banco"`
	DataEfetivada string          `csv:"Data Efetivação"`
	ValorEfetivo  decimal.Decimal `csv:"Valor Efetivo (R$)"`
	Ocorrencias   string          `csv:"Ocorrências"`
	Status        string          `csv:"Status"`
}
