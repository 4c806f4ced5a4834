package models

import "fmt"

// PixKeyType identifies how a PIX payment is addressed (the "forma de
// iniciação" code of the batch layout). It is a closed set: adding a new key
// type means extending the constants below and every switch over the type.
type PixKeyType string

const (
	// KeyPhone addresses the payment by the beneficiary's phone number.
	KeyPhone PixKeyType = "01"
	// KeyEmail addresses the payment by e-mail.
	KeyEmail PixKeyType = "02"
	// KeyTaxID addresses the payment by CPF/CNPJ.
	KeyTaxID PixKeyType = "03"
	// KeyRandom addresses the payment by a bank-issued random key (EVP).
	KeyRandom PixKeyType = "04"
	// KeyBankDetails carries full bank/branch/account data instead of a key.
	KeyBankDetails PixKeyType = "05"
)

// ParsePixKeyType validates a two-digit initiation code.
func ParsePixKeyType(code string) (PixKeyType, error) {
	switch k := PixKeyType(code); k {
	case KeyPhone, KeyEmail, KeyTaxID, KeyRandom, KeyBankDetails:
		return k, nil
	default:
		return "", fmt.Errorf("unknown PIX initiation code %q", code)
	}
}

// UsesPixKey reports whether Segment B must carry the textual PIX key. Tax-ID
// addressed payments identify the beneficiary through the document fields, so
// the key field stays blank for them as well as for bank-detail payments.
func (k PixKeyType) UsesPixKey() bool {
	switch k {
	case KeyPhone, KeyEmail, KeyRandom:
		return true
	case KeyTaxID, KeyBankDetails:
		return false
	}
	return false
}

// UsesBankDetails reports whether Segment A must carry the beneficiary's
// bank/branch/account block.
func (k PixKeyType) UsesBankDetails() bool {
	return k == KeyBankDetails
}

// String returns the wire code.
func (k PixKeyType) String() string { return string(k) }
