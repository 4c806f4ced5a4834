// Package layout implements the positional field rules of the CNAB240 record
// format: fixed-width padding, declarative byte-range tables and an
// append-style record builder that always yields exactly 240 characters.
package layout

import (
	"strings"
)

// RecordLen is the fixed width of every CNAB240 record.
const RecordLen = 240

// PadNumeric formats a value as a zero-padded numeric field of exactly n
// characters. Values longer than n keep their rightmost n characters, so an
// oversized number silently loses its high-order digits. This overflow policy
// is part of the file contract; callers that cannot tolerate truncation must
// validate widths upstream.
func PadNumeric(value string, n int) string {
	if len(value) >= n {
		return value[len(value)-n:]
	}
	return strings.Repeat("0", n-len(value)) + value
}

// PadAlfa formats a value as a space-padded alphanumeric field of exactly n
// characters. Values longer than n keep their leftmost n characters.
func PadAlfa(value string, n int) string {
	if len(value) >= n {
		return value[:n]
	}
	return value + strings.Repeat(" ", n-len(value))
}

// Field names one byte range inside a record. Start is 0-indexed and End is
// exclusive, matching Go slice semantics.
type Field struct {
	Name  string
	Start int
	End   int
}

// Len returns the width of the field in characters.
func (f Field) Len() int { return f.End - f.Start }

// Slice extracts the raw field content from a full-width record line.
func (f Field) Slice(line string) string { return line[f.Start:f.End] }

// Trimmed extracts the field content with surrounding spaces removed.
func (f Field) Trimmed(line string) string { return strings.TrimSpace(f.Slice(line)) }

// Record accumulates fixed-width fields in order. Build a record by appending
// fields left to right and call String to close it at 240 characters.
type Record struct {
	b strings.Builder
}

// Numeric appends a zero-padded numeric field of width n.
func (r *Record) Numeric(value string, n int) *Record {
	r.b.WriteString(PadNumeric(value, n))
	return r
}

// Alfa appends a space-padded alphanumeric field of width n.
func (r *Record) Alfa(value string, n int) *Record {
	r.b.WriteString(PadAlfa(value, n))
	return r
}

// Literal appends a fixed constant verbatim.
func (r *Record) Literal(s string) *Record {
	r.b.WriteString(s)
	return r
}

// Blank appends n spaces.
func (r *Record) Blank(n int) *Record {
	r.b.WriteString(strings.Repeat(" ", n))
	return r
}

// Zeros appends n zero characters.
func (r *Record) Zeros(n int) *Record {
	r.b.WriteString(strings.Repeat("0", n))
	return r
}

// Len returns the number of characters appended so far.
func (r *Record) Len() int { return r.b.Len() }

// String closes the record, space-padding to RecordLen. Appending more than
// RecordLen characters is a builder bug; the overflow is kept so that tests
// on record length catch it rather than masking it.
func (r *Record) String() string {
	s := r.b.String()
	if len(s) < RecordLen {
		return s + strings.Repeat(" ", RecordLen-len(s))
	}
	return s
}
