package scheduling

import (
	"context"
	"time"

	appointmentRepo "pawmart/database/repository/appointment"
	providerRepo "pawmart/database/repository/provider"
	scheduleRepo "pawmart/database/repository/schedule"
	"pawmart/models"

	"github.com/go-redis/redis/v8"
)

// SchedulingService owns a provider's recurring availability and its
// expansion into concrete bookable slots.
type SchedulingService interface {
	// SetAvailability replaces the provider's whole week with the given
	// windows and slot duration. Windows use minutes from midnight.
	SetAvailability(ctx context.Context, providerID string, windows []models.AvailabilityWindow, slotMinutes int) (*models.WeeklySchedule, error)
	// GetAvailability returns the provider's current weekly schedule, or
	// an empty schedule when none has been set.
	GetAvailability(ctx context.Context, providerID string) (*models.WeeklySchedule, error)
	// DeleteWindow removes one window from the provider's week.
	DeleteWindow(ctx context.Context, providerID, windowID string) error
	// GetSlotsForDate expands the provider's windows for one calendar date
	// into ordered slot instances, each marked FREE or BOOKED.
	GetSlotsForDate(ctx context.Context, providerID, date string) ([]models.SlotInstance, error)
	// MonthActivity reports, for every day of the given month, whether the
	// provider has any matching weekly window. Independent of occupancy.
	MonthActivity(ctx context.Context, providerID string, year int, month time.Month) ([]models.ActiveDay, error)
}

// DefaultSchedulingService is the production scheduling service.
type DefaultSchedulingService struct {
	Repo         scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	ProviderRepo providerRepo.ProviderRepository
	CacheClient  *redis.Client
	CacheTTL     time.Duration
	// Now is the clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
