package models

import (
	"sort"
	"time"
)

// Fixed slot durations a provider can pick in the authoring UI. Anything
// else must come in as a custom positive minute count.
var FixedSlotDurations = []int{15, 30, 45, 60}

// AvailabilityWindow is a recurring weekly time range during which a
// provider accepts bookings. Start and End are minutes from midnight
// (e.g., 540 for 9:00 AM); Start < End always holds for stored windows.
type AvailabilityWindow struct {
	ID      string       `bson:"id" json:"id"`
	Weekday time.Weekday `bson:"weekday" json:"weekday"`
	Start   int          `bson:"start" json:"start"`
	End     int          `bson:"end" json:"end"`
}

// WeeklySchedule is a provider's full recurring week: the active windows
// plus the slot duration applied uniformly to all of them. Authoring
// replaces the whole document, it never merges.
type WeeklySchedule struct {
	ProviderID  string               `bson:"providerId" json:"providerId"`
	SlotMinutes int                  `bson:"slotMinutes" json:"slotMinutes"`
	Windows     []AvailabilityWindow `bson:"windows" json:"windows"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ActiveDay is one cell of the calendar month projection: does the provider
// work this date at all. Occupancy is resolved later, at slot-fetch time.
type ActiveDay struct {
	Date   string `json:"date"` // "2006-01-02"
	Active bool   `json:"active"`
}

// WindowsFor returns the windows covering the given weekday, ordered by
// start time. An empty result means the provider does not work that day.
func (s *WeeklySchedule) WindowsFor(day time.Weekday) []AvailabilityWindow {
	var out []AvailabilityWindow
	for _, w := range s.Windows {
		if w.Weekday == day {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// ActiveOn reports whether any window covers the weekday of the given date.
// Occupancy is deliberately ignored here; a fully booked day still counts
// as active for calendar colouring.
func (s *WeeklySchedule) ActiveOn(day time.Weekday) bool {
	for _, w := range s.Windows {
		if w.Weekday == day {
			return true
		}
	}
	return false
}
