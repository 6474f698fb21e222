package models

// WindowInput is one weekly range in an availability authoring request.
// Times are wire-format "HH:MM:SS" strings; the handler converts them to
// minutes from midnight before the scheduling service sees them.
type WindowInput struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required"` // "SUN".."SAT"
	StartTime string `json:"startTime" binding:"required"` // "09:00:00"
	EndTime   string `json:"endTime" binding:"required"`   // "17:00:00"
}

// SetAvailabilityRequest is the authoring payload: the provider's whole
// week plus one slot duration applied to every window.
type SetAvailabilityRequest struct {
	Windows             []WindowInput `json:"windows" binding:"required"`
	SlotDurationMinutes int           `json:"slotDurationMinutes" binding:"required"`
}

// BookingInput is the consumer's booking submission.
type BookingInput struct {
	ProviderID string `json:"providerId" binding:"required"`
	Date       string `json:"appointmentDate" binding:"required"` // "2006-01-02"
	StartTime  string `json:"startTime" binding:"required"`       // "09:00:00"
	EndTime    string `json:"endTime" binding:"required"`
	PetID      string `json:"petId" binding:"required"`
	Note       string `json:"note,omitempty"`
}

// ExpirePayload is the asynq task payload for releasing an abandoned
// provisional reservation.
type ExpirePayload struct {
	AppointmentID string `json:"appointmentId"`
}
