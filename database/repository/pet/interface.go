package petRepo

import (
	"context"
	"errors"

	"pawmart/models"
)

// ErrNotFound is returned when no pet matches the given id.
var ErrNotFound = errors.New("pet not found")

// PetRepository reads pet records. Pet CRUD lives in the profile service;
// the booking engine only needs the ownership check.
type PetRepository interface {
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	// IsOwnedBy reports whether the pet belongs to the given consumer.
	IsOwnedBy(ctx context.Context, petID, consumerID string) (bool, error)
}
