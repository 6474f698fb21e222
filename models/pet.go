package models

import "time"

// Pet is the subject of an appointment. Pet CRUD is owned by the profile
// service; the booking engine only checks ownership.
type Pet struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Species   string    `bson:"species" json:"species"` // e.g., "dog", "cat"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
