package booking

import (
	"context"

	"pawmart/models"
)

// BookingRequest is the validated booking tuple the engine commits.
// Start and End are minutes from midnight.
type BookingRequest struct {
	ProviderID string
	Date       string // "2006-01-02"
	Start      int
	End        int
	ConsumerID string
	PetID      string
	Note       string
}

// BookingResult is the synchronous half of a booking: the provisional
// appointment plus where to send the consumer to pay. Finalization arrives
// later on the payment callback.
type BookingResult struct {
	AppointmentID string `json:"appointmentId"`
	CheckoutURL   string `json:"checkoutUrl"`
	Status        string `json:"status"`
}

// BookingService coordinates slot reservation, the payment round-trip and
// the appointment lifecycle.
type BookingService interface {
	// Book reserves the slot provisionally and opens a checkout session.
	Book(ctx context.Context, req BookingRequest) (*BookingResult, error)
	// HandlePaymentOutcome finalizes or rolls back a reservation from the
	// gate's callback. Idempotent for appointments already finalized.
	HandlePaymentOutcome(ctx context.Context, cb models.PaymentCallback) error
	// ReleaseIfUnpaid cancels a reservation still awaiting payment; the
	// reaper calls this once a hold's bounded window elapses.
	ReleaseIfUnpaid(ctx context.Context, appointmentID string) error
	// Cancel marks an appointment cancelled on behalf of its consumer or
	// provider. Never a hard delete.
	Cancel(ctx context.Context, appointmentID, actorID string) error
	// ListForConsumer returns the consumer's appointments with derived
	// display statuses.
	ListForConsumer(ctx context.Context, consumerID string) ([]models.AppointmentView, error)
	// ListForProvider returns the provider's appointments in a date range
	// with derived display statuses.
	ListForProvider(ctx context.Context, providerID, fromDate, toDate string) ([]models.AppointmentView, error)
}
