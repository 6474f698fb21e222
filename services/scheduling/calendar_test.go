package scheduling

import (
	"context"
	"testing"
	"time"

	"pawmart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsProviderActiveOn(t *testing.T) {
	schedule := &models.WeeklySchedule{
		ProviderID:  "prov-1",
		SlotMinutes: 30,
		Windows: []models.AvailabilityWindow{
			{ID: "w1", Weekday: time.Monday, Start: 9 * 60, End: 10 * 60},
			{ID: "w2", Weekday: time.Thursday, Start: 14 * 60, End: 17 * 60},
		},
	}

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	tuesday := monday.AddDate(0, 0, 1)
	thursday := monday.AddDate(0, 0, 3)

	assert.True(t, IsProviderActiveOn(schedule, monday))
	assert.False(t, IsProviderActiveOn(schedule, tuesday))
	assert.True(t, IsProviderActiveOn(schedule, thursday))
	assert.False(t, IsProviderActiveOn(nil, monday))
}

func TestMonthActivity_ProjectsWholeMonth(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules["prov-1"] = &models.WeeklySchedule{
		ProviderID:  "prov-1",
		SlotMinutes: 30,
		Windows: []models.AvailabilityWindow{
			{ID: "w1", Weekday: time.Monday, Start: 9 * 60, End: 10 * 60},
		},
	}
	svc := newTestSchedulingService(schedules, newFakeOccupancy())

	days, err := svc.MonthActivity(context.Background(), "prov-1", 2026, time.March)
	require.NoError(t, err)
	require.Len(t, days, 31)

	activeCount := 0
	for _, d := range days {
		day, err := time.ParseInLocation("2006-01-02", d.Date, time.Local)
		require.NoError(t, err)
		if d.Active {
			activeCount++
			assert.Equal(t, time.Monday, day.Weekday())
		} else {
			assert.NotEqual(t, time.Monday, day.Weekday())
		}
	}
	// March 2026 has five Mondays.
	assert.Equal(t, 5, activeCount)
}

// A fully booked date still shows as active; occupancy is resolved at
// slot-fetch time, not in the calendar projection.
func TestMonthActivity_IgnoresOccupancy(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules["prov-1"] = &models.WeeklySchedule{
		ProviderID:  "prov-1",
		SlotMinutes: 60,
		Windows: []models.AvailabilityWindow{
			{ID: "w1", Weekday: time.Monday, Start: 9 * 60, End: 10 * 60},
		},
	}
	occupancy := newFakeOccupancy()
	occupancy.book("prov-1", "2026-03-09", 540) // the only slot that day

	svc := newTestSchedulingService(schedules, occupancy)

	days, err := svc.MonthActivity(context.Background(), "prov-1", 2026, time.March)
	require.NoError(t, err)
	for _, d := range days {
		if d.Date == "2026-03-09" {
			assert.True(t, d.Active)
		}
	}
}

func TestMonthActivity_NoScheduleAllInactive(t *testing.T) {
	svc := newTestSchedulingService(newFakeScheduleRepo(), newFakeOccupancy())

	days, err := svc.MonthActivity(context.Background(), "prov-1", 2026, time.April)
	require.NoError(t, err)
	require.Len(t, days, 30)
	for _, d := range days {
		assert.False(t, d.Active)
	}
}

func TestMonthActivity_RejectsInvalidMonth(t *testing.T) {
	svc := newTestSchedulingService(newFakeScheduleRepo(), newFakeOccupancy())

	_, err := svc.MonthActivity(context.Background(), "prov-1", 2026, time.Month(13))
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}
