package providerRepo

import (
	"context"
	"errors"

	"pawmart/models"
)

// ErrNotFound is returned when no provider matches the given id.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository reads provider records. Registration and profile
// management belong to the identity service; this side only needs lookups
// and the schedule-driven status flip.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// SetStatus flips the provider's visibility status, e.g. to "active"
	// once a weekly schedule exists.
	SetStatus(ctx context.Context, id, status string) error
}
