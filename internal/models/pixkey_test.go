package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePixKeyType(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected PixKeyType
		ok       bool
	}{
		{"Phone", "01", KeyPhone, true},
		{"Email", "02", KeyEmail, true},
		{"Tax ID", "03", KeyTaxID, true},
		{"Random key", "04", KeyRandom, true},
		{"Bank details", "05", KeyBankDetails, true},
		{"Unknown code", "06", "", false},
		{"Empty", "", "", false},
		{"Unpadded", "1", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, err := ParsePixKeyType(tc.code)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, k)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPixKeyTypeBehavior(t *testing.T) {
	tests := []struct {
		key         PixKeyType
		usesKey     bool
		usesDetails bool
	}{
		{KeyPhone, true, false},
		{KeyEmail, true, false},
		{KeyTaxID, false, false},
		{KeyRandom, true, false},
		{KeyBankDetails, false, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			assert.Equal(t, tc.usesKey, tc.key.UsesPixKey())
			assert.Equal(t, tc.usesDetails, tc.key.UsesBankDetails())
		})
	}
}
