// Package errors defines the failure taxonomy shared by the storefront core
// and its boundary clients.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthenticated is returned by actions that need a logged-in session.
	ErrUnauthenticated = errors.New("please log in to continue")
	// ErrEmptyCart is returned by checkout when the cart has no lines.
	ErrEmptyCart = errors.New("your cart is empty")
	// ErrMissingShippingAddress rejects an order without a destination.
	ErrMissingShippingAddress = errors.New("a shipping address is required")
	// ErrCheckoutInFlight rejects a second submission while one is pending.
	ErrCheckoutInFlight = errors.New("an order is already being placed")
	// ErrCheckoutSuperseded marks an order outcome from a session that has
	// since ended.
	ErrCheckoutSuperseded = errors.New("order outcome belongs to an ended session")
)

// BoundaryError is a non-success status returned by a remote boundary.
type BoundaryError struct {
	Op         string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *BoundaryError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed (status %d)", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed (status %d): %s", e.Op, e.StatusCode, e.Message)
}

// NewBoundaryError creates a new BoundaryError
func NewBoundaryError(op string, statusCode int, message string) *BoundaryError {
	return &BoundaryError{Op: op, StatusCode: statusCode, Message: message}
}

// MalformedResponseError reports a boundary reply that could not be decoded.
type MalformedResponseError struct {
	Op  string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s returned an unexpected response: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsBoundary reports whether err came from a remote boundary, either as a
// failure status or an undecodable body. Callers handle both the same way.
func IsBoundary(err error) bool {
	var be *BoundaryError
	var me *MalformedResponseError
	return errors.As(err, &be) || errors.As(err, &me)
}

// UserMessage picks the text shown to the user for err. A boundary-provided
// message wins; boundary failures without one use fallback. Timeouts and
// cancellations get a fixed text, anything else keeps its own.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var be *BoundaryError
	if errors.As(err, &be) {
		if msg := strings.TrimSpace(be.Message); msg != "" {
			return msg
		}
		return fallback
	}
	var me *MalformedResponseError
	if errors.As(err, &me) {
		return fallback
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out."
	case errors.Is(err, context.Canceled):
		return "The request was cancelled."
	}
	return err.Error()
}
