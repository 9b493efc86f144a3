package jsonrpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type chainError struct{}

func (chainError) Error() string  { return "nonce too low" }
func (chainError) ErrorCode() int { return TransactionRejected }

func TestAsError(t *testing.T) {
	notSupported := NewMethodNotSupported("notifications not supported", nil)
	testCases := []struct {
		name     string
		err      error
		expected *Error
	}{
		{name: "nil", err: nil, expected: nil},
		{name: "coded error kept", err: notSupported, expected: notSupported},
		{name: "wrapped coded error", err: fmt.Errorf("dispatch: %w", notSupported), expected: notSupported},
		{name: "foreign coded error", err: chainError{}, expected: &Error{Code: TransactionRejected, Message: "nonce too low"}},
		{name: "plain error", err: errors.New("boom"), expected: &Error{Code: InternalError, Message: "boom"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AsError(tc.err))
		})
	}
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "code: -32700, message: bad", NewParsingError("bad", nil).Error())
	assert.Equal(t, "code: -32602, message: bad, data: x", NewInvalidParamsError("bad", "x").Error())
	var nilErr *Error
	assert.Equal(t, "", nilErr.Error())
	assert.True(t, IsCoded(NewLimitExceeded("slow down", nil)))
	assert.False(t, IsCoded(errors.New("plain")))
}
