package scheduleRepo

import (
	"context"
	"errors"

	"pawmart/models"
)

// ErrNotFound is returned when a provider has no stored weekly schedule.
var ErrNotFound = errors.New("schedule not found")

// ScheduleRepository persists each provider's recurring weekly availability.
type ScheduleRepository interface {
	// Replace swaps the provider's whole week for the given schedule,
	// creating it when none exists. Authoring never merges.
	Replace(ctx context.Context, schedule *models.WeeklySchedule) error
	// GetByProvider returns the provider's current weekly schedule.
	GetByProvider(ctx context.Context, providerID string) (*models.WeeklySchedule, error)
	// DeleteWindow removes a single window from the provider's week.
	DeleteWindow(ctx context.Context, providerID, windowID string) error
	// EnsureIndexes creates the necessary indexes on the schedules collection.
	EnsureIndexes() error
}
