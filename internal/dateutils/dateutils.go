// Package dateutils provides the date and time formats used by CNAB240
// records.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// CNAB date and time layouts. Dates are DDMMYYYY, times HHMMSS, both without
// separators.
const (
	DateLayoutCNAB = "02012006"
	TimeLayoutCNAB = "150405"
	DateLayoutISO  = "2006-01-02"
)

// FormatCNABDate renders a date as the 8-digit DDMMYYYY wire form.
func FormatCNABDate(t time.Time) string {
	return t.Format(DateLayoutCNAB)
}

// FormatCNABTime renders a time of day as the 6-digit HHMMSS wire form.
func FormatCNABTime(t time.Time) string {
	return t.Format(TimeLayoutCNAB)
}

// ParseCNABDate parses an 8-digit DDMMYYYY field.
func ParseCNABDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutCNAB, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid CNAB date %q: %w", s, err)
	}
	return t, nil
}

// DisplayDate reformats a DDMMYYYY field as DD/MM/YYYY for reports. Fields
// that are blank or all zeros come back empty; anything else unparseable is
// passed through trimmed, so a corrupt return line stays visible instead of
// disappearing.
func DisplayDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || IsAllZeros(s) {
		return ""
	}
	t, err := ParseCNABDate(s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// IsAllZeros reports whether a field consists solely of '0' characters.
// CNAB uses all-zero date fields to mean "not set".
func IsAllZeros(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '0' {
			return false
		}
	}
	return true
}
