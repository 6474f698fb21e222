package scheduling

import (
	"context"
	"testing"
	"time"

	scheduleRepo "pawmart/database/repository/schedule"
	"pawmart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Monday. Dates in tests are chosen relative to it.
var fixedNow = time.Date(2026, 3, 2, 10, 30, 0, 0, time.Local)

type fakeScheduleRepo struct {
	schedules map[string]*models.WeeklySchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]*models.WeeklySchedule)}
}

func (f *fakeScheduleRepo) Replace(_ context.Context, schedule *models.WeeklySchedule) error {
	copied := *schedule
	f.schedules[schedule.ProviderID] = &copied
	return nil
}

func (f *fakeScheduleRepo) GetByProvider(_ context.Context, providerID string) (*models.WeeklySchedule, error) {
	schedule, ok := f.schedules[providerID]
	if !ok {
		return nil, scheduleRepo.ErrNotFound
	}
	return schedule, nil
}

func (f *fakeScheduleRepo) DeleteWindow(_ context.Context, providerID, windowID string) error {
	schedule, ok := f.schedules[providerID]
	if !ok {
		return scheduleRepo.ErrNotFound
	}
	var kept []models.AvailabilityWindow
	for _, w := range schedule.Windows {
		if w.ID != windowID {
			kept = append(kept, w)
		}
	}
	schedule.Windows = kept
	return nil
}

func (f *fakeScheduleRepo) EnsureIndexes() error { return nil }

// fakeOccupancy satisfies the appointment repository with canned booked
// starts; the scheduling service only calls BookedStarts.
type fakeOccupancy struct {
	booked map[string]map[int]bool // "providerID|date" -> starts
}

func newFakeOccupancy() *fakeOccupancy {
	return &fakeOccupancy{booked: make(map[string]map[int]bool)}
}

func (f *fakeOccupancy) book(providerID, date string, start int) {
	key := providerID + "|" + date
	if f.booked[key] == nil {
		f.booked[key] = make(map[int]bool)
	}
	f.booked[key][start] = true
}

func (f *fakeOccupancy) BookedStarts(_ context.Context, providerID, date string) (map[int]bool, error) {
	out := make(map[int]bool)
	for start := range f.booked[providerID+"|"+date] {
		out[start] = true
	}
	return out, nil
}

func (f *fakeOccupancy) Insert(context.Context, *models.Appointment) error { return nil }
func (f *fakeOccupancy) GetByID(context.Context, string) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeOccupancy) SetCheckoutID(context.Context, string, string) error { return nil }
func (f *fakeOccupancy) TransitionStatus(context.Context, string, string, string, string, string) error {
	return nil
}
func (f *fakeOccupancy) ListByConsumer(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeOccupancy) ListByProvider(context.Context, string, string, string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeOccupancy) EnsureIndexes() error { return nil }

func newTestSchedulingService(schedules *fakeScheduleRepo, occupancy *fakeOccupancy) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Repo:         schedules,
		Appointments: occupancy,
		Now:          func() time.Time { return fixedNow },
	}
}

func TestBuildSlots(t *testing.T) {
	window := models.AvailabilityWindow{ID: "w1", Weekday: time.Monday}

	tests := []struct {
		name        string
		start, end  int
		slotMinutes int
		wantStarts  []int
	}{
		{
			name:  "exact partition",
			start: 9 * 60, end: 10 * 60, slotMinutes: 30,
			wantStarts: []int{540, 570},
		},
		{
			name:  "short trailing remainder dropped",
			start: 9 * 60, end: 10*60 + 10, slotMinutes: 30,
			wantStarts: []int{540, 570},
		},
		{
			name:  "window shorter than one slot",
			start: 9 * 60, end: 9*60 + 20, slotMinutes: 30,
			wantStarts: nil,
		},
		{
			name:  "custom duration",
			start: 8 * 60, end: 9 * 60, slotMinutes: 25,
			wantStarts: []int{480, 505},
		},
		{
			name:  "hour slots across a long day",
			start: 9 * 60, end: 17 * 60, slotMinutes: 60,
			wantStarts: []int{540, 600, 660, 720, 780, 840, 900, 960},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := window
			w.Start, w.End = tt.start, tt.end
			slots := BuildSlots(w, "2026-03-09", tt.slotMinutes)

			require.Len(t, slots, len(tt.wantStarts))
			for i, slot := range slots {
				assert.Equal(t, tt.wantStarts[i], slot.Start)
				assert.Equal(t, tt.wantStarts[i]+tt.slotMinutes, slot.End)
				assert.Equal(t, models.OccupancyFree, slot.Occupancy)
				assert.Equal(t, "2026-03-09", slot.Date)
				assert.Equal(t, "w1", slot.WindowID)
				// Fully inside the window, consecutive, non-overlapping.
				assert.GreaterOrEqual(t, slot.Start, tt.start)
				assert.LessOrEqual(t, slot.End, tt.end)
				if i > 0 {
					assert.Equal(t, slots[i-1].End, slot.Start)
				}
			}
		})
	}
}

func TestGetSlotsForDate_RejectsPastDates(t *testing.T) {
	svc := newTestSchedulingService(newFakeScheduleRepo(), newFakeOccupancy())

	_, err := svc.GetSlotsForDate(context.Background(), "prov-1", "2026-03-01")
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestGetSlotsForDate_TodayIsBookable(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules["prov-1"] = &models.WeeklySchedule{
		ProviderID:  "prov-1",
		SlotMinutes: 30,
		Windows: []models.AvailabilityWindow{
			{ID: "w1", Weekday: time.Monday, Start: 9 * 60, End: 10 * 60},
		},
	}
	svc := newTestSchedulingService(schedules, newFakeOccupancy())

	slots, err := svc.GetSlotsForDate(context.Background(), "prov-1", "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestGetSlotsForDate_DayOffReturnsEmpty(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules["prov-1"] = &models.WeeklySchedule{
		ProviderID:  "prov-1",
		SlotMinutes: 30,
		Windows: []models.AvailabilityWindow{
			{ID: "w1", Weekday: time.Monday, Start: 9 * 60, End: 10 * 60},
		},
	}
	svc := newTestSchedulingService(schedules, newFakeOccupancy())

	// 2026-03-03 is a Tuesday; the provider only works Mondays.
	slots, err := svc.GetSlotsForDate(context.Background(), "prov-1", "2026-03-03")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetSlotsForDate_NoScheduleReturnsEmpty(t *testing.T) {
	svc := newTestSchedulingService(newFakeScheduleRepo(), newFakeOccupancy())

	slots, err := svc.GetSlotsForDate(context.Background(), "prov-1", "2026-03-09")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// Provider sets Monday 09:00-10:00 with 30-minute slots; the next Monday
// expands to exactly 09:00-09:30 and 09:30-10:00, both FREE.
func TestGetSlotsForDate_MondayScenario(t *testing.T) {
	schedules := newFakeScheduleRepo()
	occupancy := newFakeOccupancy()
	svc := newTestSchedulingService(schedules, occupancy)

	_, err := svc.SetAvailability(context.Background(), "prov-1", []models.AvailabilityWindow{
		{Weekday: time.Monday, Start: 9 * 60, End: 10 * 60},
	}, 30)
	require.NoError(t, err)

	slots, err := svc.GetSlotsForDate(context.Background(), "prov-1", "2026-03-09")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, 540, slots[0].Start)
	assert.Equal(t, 570, slots[0].End)
	assert.Equal(t, 570, slots[1].Start)
	assert.Equal(t, 600, slots[1].End)
	assert.True(t, slots[0].Free())
	assert.True(t, slots[1].Free())
}

func TestGetSlotsForDate_MarksBookedSlots(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules["prov-1"] = &models.WeeklySchedule{
		ProviderID:  "prov-1",
		SlotMinutes: 30,
		Windows: []models.AvailabilityWindow{
			{ID: "w1", Weekday: time.Monday, Start: 9 * 60, End: 10 * 60},
		},
	}
	occupancy := newFakeOccupancy()
	occupancy.book("prov-1", "2026-03-09", 540)
	svc := newTestSchedulingService(schedules, occupancy)

	slots, err := svc.GetSlotsForDate(context.Background(), "prov-1", "2026-03-09")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, models.OccupancyBooked, slots[0].Occupancy)
	assert.Equal(t, models.OccupancyFree, slots[1].Occupancy)
}

func TestGetSlotsForDate_MultipleWindowsOrderedByStart(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules["prov-1"] = &models.WeeklySchedule{
		ProviderID:  "prov-1",
		SlotMinutes: 60,
		Windows: []models.AvailabilityWindow{
			{ID: "pm", Weekday: time.Monday, Start: 14 * 60, End: 16 * 60},
			{ID: "am", Weekday: time.Monday, Start: 9 * 60, End: 11 * 60},
		},
	}
	svc := newTestSchedulingService(schedules, newFakeOccupancy())

	slots, err := svc.GetSlotsForDate(context.Background(), "prov-1", "2026-03-09")
	require.NoError(t, err)
	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i].Start, slots[i-1].Start)
	}
}
