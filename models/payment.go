package models

// Payment outcomes reported by the checkout collaborator.
const (
	PaymentOutcomeSuccess = "SUCCESS"
	PaymentOutcomeFailure = "FAILURE"
)

// CheckoutRequest is what the booking engine hands the payment gate when a
// provisional reservation needs a checkout session. The appointment id
// travels as correlation state and comes back on the callback.
type CheckoutRequest struct {
	AppointmentID string
	ConsumerID    string
	ProviderName  string
	ServiceKind   ServiceKind
	Currency      string
	AmountCents   int64
	Description   string
}

// CheckoutSession is the gate's answer: where to send the consumer.
type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

// PaymentCallback is the gate's asynchronous verdict on a checkout session.
// The consumer-facing landing pages mirror this outcome but carry no
// authority over appointment state.
type PaymentCallback struct {
	AppointmentID         string `json:"appointmentId" binding:"required"`
	Outcome               string `json:"outcome" binding:"required"`
	ProviderTransactionID string `json:"providerTransactionId"`
}
