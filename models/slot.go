package models

// Occupancy states of a slot instance.
const (
	OccupancyFree   = "FREE"
	OccupancyBooked = "BOOKED"
)

// SlotInstance is a concrete, date-bound, duration-sized sub-interval of an
// availability window. Instances are never stored; the expander computes
// them on demand and marks occupancy against committed appointments.
type SlotInstance struct {
	WindowID  string `json:"windowId"`
	Date      string `json:"date"` // "2006-01-02"
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Occupancy string `json:"occupancy"`
}

// Free reports whether the slot still has no committed appointment.
func (s SlotInstance) Free() bool {
	return s.Occupancy == OccupancyFree
}
