package models

import "time"

// ServiceKind tags the kind of pet-care service a provider offers.
type ServiceKind string

const (
	ServiceKindDoctor       ServiceKind = "doctor"
	ServiceKindWalker       ServiceKind = "walker"
	ServiceKindGroomer      ServiceKind = "groomer"
	ServiceKindBehaviourist ServiceKind = "behaviourist"
)

// ValidServiceKind reports whether k is one of the supported provider kinds.
func ValidServiceKind(k ServiceKind) bool {
	switch k {
	case ServiceKindDoctor, ServiceKindWalker, ServiceKindGroomer, ServiceKindBehaviourist:
		return true
	}
	return false
}

// Provider is an entity offering a bookable pet-care service. Registration,
// KYC and profile editing live outside this service; we only read providers.
type Provider struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	ServiceKind ServiceKind `bson:"serviceKind" json:"serviceKind"`
	Currency    string      `bson:"currency" json:"currency"`             // e.g., "EUR"
	SlotPrice   int64       `bson:"slotPriceCents" json:"slotPriceCents"` // flat price per slot, minor units
	Status      string      `bson:"status" json:"status"`     // "active" once a schedule exists
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}
