package models

// Fixed values of the Banco Inter CNAB240 PIX layout.
const (
	BankCode = "077"
	BankName = "BANCO INTER"

	// FileLayoutVersion is the file-level layout version recorded in the
	// file header; BatchLayoutVersion is the PIX batch layout version.
	FileLayoutVersion  = "107"
	BatchLayoutVersion = "046"

	// LaunchFormPix is the "forma de lançamento" code selecting PIX
	// transfers in the batch header.
	LaunchFormPix = "45"

	// RecordingDensity is the legacy tape density field of the file header.
	RecordingDensity = "01600"

	CurrencyBRL = "BRL"

	// DefaultAccountType and DefaultFinality are the Segment A defaults the
	// bank expects for PIX remittances.
	DefaultAccountType = "01"
	DefaultFinality    = "00010"
)

// StatusPaid and StatusUnpaid are the derived settlement states of a return
// entry, keyed on whether the bank filled the effective-payment date.
const (
	StatusPaid   = "Pago"
	StatusUnpaid = "Não Pago"
)
