package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundaryError_Error(t *testing.T) {
	assert.Equal(t, "login failed (status 401)", NewBoundaryError("login", 401, "").Error())
	assert.Equal(t, "place order failed (status 400): out of stock",
		NewBoundaryError("place order", 400, "out of stock").Error())
}

func TestIsBoundary(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"status error", NewBoundaryError("login", 500, ""), true},
		{"wrapped status error", fmt.Errorf("login: %w", NewBoundaryError("login", 403, "disabled")), true},
		{"malformed body", &MalformedResponseError{Op: "login", Err: errors.New("eof")}, true},
		{"sentinel", ErrEmptyCart, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBoundary(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"boundary message wins", NewBoundaryError("order", 400, "Insufficient stock"), "Insufficient stock"},
		{"blank boundary message falls back", NewBoundaryError("order", 500, "  "), "Order failed"},
		{"malformed falls back", &MalformedResponseError{Op: "order", Err: errors.New("bad json")}, "Order failed"},
		{"core error keeps its text", ErrMissingShippingAddress, "a shipping address is required"},
		{"timeout", fmt.Errorf("place order: failed to execute request: %w", context.DeadlineExceeded), "The request timed out."},
		{"cancelled", context.Canceled, "The request was cancelled."},
		{"transport", fmt.Errorf("place order: failed to execute request: %w", errors.New("connection refused")),
			"place order: failed to execute request: connection refused"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "Order failed"))
		})
	}
}

func TestMalformedResponseError_Unwrap(t *testing.T) {
	inner := errors.New("unexpected EOF")
	err := &MalformedResponseError{Op: "list orders", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "list orders")
}
