package payment

import (
	"context"
	"errors"

	"pawmart/models"
)

// ErrGateUnavailable is returned when the checkout collaborator cannot
// produce a session. The reservation that triggered the request must be
// released by the caller; the consumer retries by re-initiating checkout.
var ErrGateUnavailable = errors.New("payment gate unavailable")

// Gate is the boundary to the external checkout collaborator. Card capture
// and the checkout UI live entirely on the collaborator's side; this
// service only requests sessions and receives outcome callbacks.
type Gate interface {
	// CreateCheckoutSession asks the collaborator for a hosted checkout
	// page, carrying the appointment id as correlation state.
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
}
