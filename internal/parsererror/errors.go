package parsererror

import "fmt"

// InvalidFormatError represents an error where the input file does not conform
// to the CNAB240 structure expected by a parser.
type InvalidFormatError struct {
	FilePath string
	Reason   string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid CNAB240 format in file '%s': %s", e.FilePath, e.Reason)
}

// AmountError represents a malformed monetary amount rejected in strict mode.
type AmountError struct {
	Index int
	Value string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("transaction %d: invalid payment amount '%s': %v", e.Index, e.Value, e.Err)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}
