package parsererror

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{FilePath: "/tmp/lote.ret", Reason: "file has no records"}
	assert.Contains(t, err.Error(), "/tmp/lote.ret")
	assert.Contains(t, err.Error(), "file has no records")
}

func TestAmountError(t *testing.T) {
	inner := fmt.Errorf("invalid amount")
	err := &AmountError{Index: 3, Value: "abc", Err: inner}

	assert.Contains(t, err.Error(), "transaction 3")
	assert.Contains(t, err.Error(), "'abc'")
	assert.ErrorIs(t, err, inner)
}
