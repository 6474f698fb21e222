package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	providerRepo "pawmart/database/repository/provider"
	scheduleRepo "pawmart/database/repository/schedule"
	"pawmart/models"
	"pawmart/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// minutesPerDay bounds window times.
const minutesPerDay = 24 * 60

func (s *DefaultSchedulingService) SetAvailability(ctx context.Context, providerID string, windows []models.AvailabilityWindow, slotMinutes int) (*models.WeeklySchedule, error) {
	logger := utils.GetLogger()

	if providerID == "" {
		return nil, newValidationError("providerId", "missing provider id")
	}
	if err := validateSlotDuration(slotMinutes); err != nil {
		return nil, err
	}
	if err := validateWindows(windows); err != nil {
		return nil, err
	}

	schedule := &models.WeeklySchedule{
		ProviderID:  providerID,
		SlotMinutes: slotMinutes,
		Windows:     make([]models.AvailabilityWindow, len(windows)),
	}
	copy(schedule.Windows, windows)
	for i := range schedule.Windows {
		if schedule.Windows[i].ID == "" {
			schedule.Windows[i].ID = uuid.New().String()
		}
	}

	// Replace, never merge: the provider's prior week is gone after this.
	if err := s.Repo.Replace(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to store weekly schedule: %w", err)
	}

	// A provider with a schedule is bookable.
	if s.ProviderRepo != nil {
		if err := s.ProviderRepo.SetStatus(ctx, providerID, "active"); err != nil {
			logger.Warn("failed to activate provider after schedule setup",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}

	s.invalidateMonthCache(ctx, providerID)

	logger.Info("weekly schedule replaced",
		zap.String("providerID", providerID),
		zap.Int("windows", len(schedule.Windows)),
		zap.Int("slotMinutes", slotMinutes))
	return schedule, nil
}

func (s *DefaultSchedulingService) GetAvailability(ctx context.Context, providerID string) (*models.WeeklySchedule, error) {
	schedule, err := s.Repo.GetByProvider(ctx, providerID)
	if err == scheduleRepo.ErrNotFound {
		return &models.WeeklySchedule{ProviderID: providerID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly schedule: %w", err)
	}
	return schedule, nil
}

func (s *DefaultSchedulingService) DeleteWindow(ctx context.Context, providerID, windowID string) error {
	if windowID == "" {
		return newValidationError("windowId", "missing window id")
	}
	if err := s.Repo.DeleteWindow(ctx, providerID, windowID); err != nil {
		return err
	}
	s.invalidateMonthCache(ctx, providerID)
	return nil
}

// requireProvider checks that the provider exists before expanding slots
// on its behalf.
func (s *DefaultSchedulingService) requireProvider(ctx context.Context, providerID string) error {
	if s.ProviderRepo == nil {
		return nil
	}
	if _, err := s.ProviderRepo.GetByID(ctx, providerID); err != nil {
		if err == providerRepo.ErrNotFound {
			return newValidationError("providerId", "unknown provider %q", providerID)
		}
		return err
	}
	return nil
}

func validateSlotDuration(slotMinutes int) error {
	for _, d := range models.FixedSlotDurations {
		if slotMinutes == d {
			return nil
		}
	}
	// Custom durations are allowed as long as they are positive and fit
	// inside a day.
	if slotMinutes <= 0 || slotMinutes >= minutesPerDay {
		return newValidationError("slotDurationMinutes", "invalid slot duration %d", slotMinutes)
	}
	return nil
}

func validateWindows(windows []models.AvailabilityWindow) error {
	if len(windows) == 0 {
		return newValidationError("windows", "at least one availability window is required")
	}
	for _, w := range windows {
		if w.Weekday < time.Sunday || w.Weekday > time.Saturday {
			return newValidationError("windows", "invalid day of week %d", w.Weekday)
		}
		if w.Start < 0 || w.End > minutesPerDay {
			return newValidationError("windows", "window [%d, %d) outside the day", w.Start, w.End)
		}
		if w.Start >= w.End {
			return newValidationError("windows",
				"window start %s must be before end %s",
				utils.FormatClock(w.Start), utils.FormatClock(w.End))
		}
	}

	// Two windows on the same weekday must not overlap.
	byDay := make(map[time.Weekday][]models.AvailabilityWindow)
	for _, w := range windows {
		byDay[w.Weekday] = append(byDay[w.Weekday], w)
	}
	for day, dayWindows := range byDay {
		sort.Slice(dayWindows, func(i, j int) bool { return dayWindows[i].Start < dayWindows[j].Start })
		for i := 1; i < len(dayWindows); i++ {
			if dayWindows[i].Start < dayWindows[i-1].End {
				return newValidationError("windows",
					"overlapping windows on %s: [%s, %s) and [%s, %s)",
					day,
					utils.FormatClock(dayWindows[i-1].Start), utils.FormatClock(dayWindows[i-1].End),
					utils.FormatClock(dayWindows[i].Start), utils.FormatClock(dayWindows[i].End))
			}
		}
	}
	return nil
}
