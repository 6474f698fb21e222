package models

import "time"

// Persisted appointment lifecycle states. Completion is never stored; it is
// derived from the appointment date at read time.
const (
	AppointmentPendingPayment = "PENDING_PAYMENT"
	AppointmentConfirmed      = "CONFIRMED"
	AppointmentCancelled      = "CANCELLED"
)

// Display statuses shown to consumers and providers.
const (
	DisplayBooked    = "booked"
	DisplayConfirmed = "confirmed"
	DisplayCompleted = "completed"
	DisplayCancelled = "cancelled"
)

// Appointment is a committed (or provisionally held) booking of one slot
// instance. At most one non-cancelled appointment may exist per
// (providerId, date, start); a partial unique index enforces this.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	ProviderID   string    `bson:"providerId" json:"providerId"`
	ConsumerID   string    `bson:"consumerId" json:"consumerId"`
	PetID        string    `bson:"petId" json:"petId"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	Start        int       `bson:"start" json:"start"`
	End          int       `bson:"end" json:"end"`
	Status       string    `bson:"status" json:"status"`
	Note         string    `bson:"note,omitempty" json:"note,omitempty"`
	PaymentRef   string    `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	CheckoutID   string    `bson:"checkoutId,omitempty" json:"checkoutId,omitempty"`
	CancelReason string    `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentView is an appointment decorated with its derived display
// status for listing endpoints.
type AppointmentView struct {
	Appointment
	DisplayStatus string `json:"displayStatus"`
}
