package booking

import (
	"testing"
	"time"

	"pawmart/models"

	"github.com/stretchr/testify/assert"
)

func appointmentWith(date, status string) *models.Appointment {
	return &models.Appointment{
		ID:         "appt-1",
		ProviderID: "prov-1",
		ConsumerID: "cons-1",
		Date:       date,
		Start:      540,
		End:        570,
		Status:     status,
	}
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		date   string
		status string
		want   string
	}{
		{"pending on a future date", "2026-03-15", models.AppointmentPendingPayment, models.DisplayBooked},
		{"confirmed on a future date", "2026-03-15", models.AppointmentConfirmed, models.DisplayConfirmed},
		{"pending today", "2026-03-10", models.AppointmentPendingPayment, models.DisplayBooked},
		{"confirmed today is not completed", "2026-03-10", models.AppointmentConfirmed, models.DisplayConfirmed},
		{"confirmed yesterday reads completed", "2026-03-09", models.AppointmentConfirmed, models.DisplayCompleted},
		{"pending yesterday reads completed", "2026-03-09", models.AppointmentPendingPayment, models.DisplayCompleted},
		{"cancelled in the future", "2026-03-15", models.AppointmentCancelled, models.DisplayCancelled},
		{"cancelled in the past stays cancelled", "2026-03-01", models.AppointmentCancelled, models.DisplayCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayStatus(appointmentWith(tt.date, tt.status), now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Once the appointment date has passed, the derived status is completed and
// never reverts as now keeps advancing.
func TestDisplayStatus_MonotonicOverTime(t *testing.T) {
	appt := appointmentWith("2026-03-10", models.AppointmentConfirmed)

	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)
	for i := 0; i < 400; i++ {
		assert.Equal(t, models.DisplayCompleted, DisplayStatus(appt, day))
		day = day.AddDate(0, 0, 1)
	}
}

func TestDisplayStatus_IsPure(t *testing.T) {
	appt := appointmentWith("2026-03-09", models.AppointmentConfirmed)
	before := *appt

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	_ = DisplayStatus(appt, now)
	_ = DisplayStatus(appt, now)

	assert.Equal(t, before, *appt)
}
