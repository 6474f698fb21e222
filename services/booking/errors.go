package booking

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to clients. SLOT_ALREADY_TAKEN is distinct from
// generic failure so the client re-offers slot selection instead of
// retrying the same slot blindly.
const (
	KindSlotTaken       = "SLOT_ALREADY_TAKEN"
	KindPetNotOwned     = "PET_NOT_OWNED"
	KindDateInPast      = "DATE_IN_PAST"
	KindGateUnavailable = "PAYMENT_GATE_UNAVAILABLE"
	KindSlotInvalid     = "SLOT_INVALID"
	KindValidation      = "VALIDATION"
	KindNotFound        = "NOT_FOUND"
	KindForbidden       = "FORBIDDEN"
)

// BookingError is a recoverable, request-level booking failure.
type BookingError struct {
	Kind    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewBookingError builds a BookingError of the given kind.
func NewBookingError(kind, format string, args ...interface{}) error {
	return &BookingError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrorKind extracts the booking error kind, or empty for other errors.
func ErrorKind(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
