package appointmentRepo

import (
	"context"
	"errors"

	"pawmart/models"
)

var (
	// ErrSlotTaken is returned when an insert loses the race for a slot:
	// another non-cancelled appointment already holds the same
	// (providerId, date, start) tuple.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrNotFound is returned when no appointment matches the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrStaleStatus is returned when a conditional status transition
	// matched no document, i.e. the appointment left the expected state.
	ErrStaleStatus = errors.New("appointment not in expected status")
)

// AppointmentRepository owns all appointment writes. Exclusivity of a slot
// instance is enforced here, at the storage level, not by callers.
type AppointmentRepository interface {
	// Insert creates a provisional appointment. A duplicate active slot
	// tuple yields ErrSlotTaken.
	Insert(ctx context.Context, appt *models.Appointment) error
	// GetByID fetches one appointment.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// SetCheckoutID records the payment gate's checkout session on the
	// appointment once the session exists.
	SetCheckoutID(ctx context.Context, id, checkoutID string) error
	// TransitionStatus moves an appointment from one status to another,
	// optionally recording a payment reference and a cancel reason. The
	// transition only applies while the appointment is still in the "from"
	// status; otherwise ErrStaleStatus is returned.
	TransitionStatus(ctx context.Context, id, from, to, paymentRef, reason string) error
	// BookedStarts returns the start minutes of every non-cancelled
	// appointment for (providerID, date), the occupancy source for the
	// slot expander.
	BookedStarts(ctx context.Context, providerID, date string) (map[int]bool, error)
	// ListByConsumer returns a consumer's appointments, newest date first.
	ListByConsumer(ctx context.Context, consumerID string) ([]models.Appointment, error)
	// ListByProvider returns a provider's appointments for a date range,
	// ascending by date then start.
	ListByProvider(ctx context.Context, providerID, fromDate, toDate string) ([]models.Appointment, error)
	// EnsureIndexes creates the appointment indexes, including the partial
	// unique index backing the at-most-one-booking invariant.
	EnsureIndexes() error
}
