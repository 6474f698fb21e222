package scheduling

import (
	"context"
	"fmt"

	"pawmart/models"
	"pawmart/utils"
)

// BuildSlots partitions one availability window into consecutive
// non-overlapping intervals of slotMinutes each, ascending by start. A
// trailing remainder shorter than the full duration is dropped. All slots
// come out FREE; occupancy is the caller's concern.
func BuildSlots(window models.AvailabilityWindow, date string, slotMinutes int) []models.SlotInstance {
	if slotMinutes <= 0 {
		return nil
	}
	var slots []models.SlotInstance
	for start := window.Start; start+slotMinutes <= window.End; start += slotMinutes {
		slots = append(slots, models.SlotInstance{
			WindowID:  window.ID,
			Date:      date,
			Start:     start,
			End:       start + slotMinutes,
			Occupancy: models.OccupancyFree,
		})
	}
	return slots
}

func (s *DefaultSchedulingService) GetSlotsForDate(ctx context.Context, providerID, date string) ([]models.SlotInstance, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, newValidationError("date", "%v", err)
	}
	// Past dates never expand; today is the earliest bookable date.
	if day.Before(utils.Today(s.now())) {
		return nil, ErrDateInPast
	}

	if err := s.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}

	schedule, err := s.GetAvailability(ctx, providerID)
	if err != nil {
		return nil, err
	}

	windows := schedule.WindowsFor(day.Weekday())
	if len(windows) == 0 {
		// Not working this day is a normal outcome, not an error.
		return nil, nil
	}

	booked, err := s.Appointments.BookedStarts(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slot occupancy: %w", err)
	}

	var slots []models.SlotInstance
	for _, w := range windows {
		for _, slot := range BuildSlots(w, date, schedule.SlotMinutes) {
			if booked[slot.Start] {
				slot.Occupancy = models.OccupancyBooked
			}
			slots = append(slots, slot)
		}
	}
	return slots, nil
}
