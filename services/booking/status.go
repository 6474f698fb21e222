package booking

import (
	"time"

	"pawmart/models"
	"pawmart/utils"
)

// DisplayStatus maps a persisted appointment plus "now" to what the client
// shows. Cancellation always wins; a past date reads as completed no matter
// what is stored (date supersedes stored state for "has this occurred");
// otherwise the stored status is reported verbatim. Pure and idempotent,
// never writes back.
func DisplayStatus(appt *models.Appointment, now time.Time) string {
	if appt.Status == models.AppointmentCancelled {
		return models.DisplayCancelled
	}

	if day, err := utils.ParseDate(appt.Date); err == nil {
		if day.Before(utils.Today(now)) {
			return models.DisplayCompleted
		}
	}

	switch appt.Status {
	case models.AppointmentConfirmed:
		return models.DisplayConfirmed
	default:
		return models.DisplayBooked
	}
}
