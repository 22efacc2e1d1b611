package entities

import (
	"errors"
	"strings"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")

	ErrCardNotSupported   = errors.New("Credit card payments are not yet supported.")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrSubmitInProgress   = errors.New("submission already in flight")
	ErrInvalidTransition  = errors.New("invalid order status transition")

	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrEmptyOrderID         = errors.New("order id is required")
	ErrMissingPaymentField  = errors.New("missing payment response field")
	ErrInvalidSignature     = errors.New("invalid payment signature")
	ErrMerchantMismatch     = errors.New("merchant id mismatch")
	ErrPaymentAmountInvalid = errors.New("payment amount does not match order")
	ErrPaymentUnverified    = errors.New("payment could not be verified")

	ErrSourceUnavailable = errors.New("catalog source unavailable")
	ErrPhoneNotFound     = errors.New("phone not found")
	ErrUnsupportedFile   = errors.New("unsupported catalog file type")
)

// ValidationError carries a message that can be shown to the shopper as is,
// plus the fields that failed.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}
