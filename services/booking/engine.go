package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "pawmart/database/repository/appointment"
	petRepo "pawmart/database/repository/pet"
	providerRepo "pawmart/database/repository/provider"
	scheduleRepo "pawmart/database/repository/schedule"
	"pawmart/models"
	"pawmart/services/payment"
	"pawmart/services/scheduling"
	"pawmart/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HoldExpiryScheduler schedules the delayed release of a provisional
// reservation. Implemented on the asynq queue in cron.
type HoldExpiryScheduler interface {
	ScheduleRelease(ctx context.Context, appointmentID string) error
}

// DefaultBookingEngine is the production booking engine.
type DefaultBookingEngine struct {
	Appointments appointmentRepo.AppointmentRepository
	Schedules    scheduleRepo.ScheduleRepository
	Providers    providerRepo.ProviderRepository
	Pets         petRepo.PetRepository
	Gate         payment.Gate
	Expiry       HoldExpiryScheduler
	// Now is the clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultBookingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultBookingEngine) Book(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	logger := utils.GetLogger()

	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, NewBookingError(KindValidation, "%v", err)
	}
	if day.Before(utils.Today(e.now())) {
		return nil, NewBookingError(KindDateInPast, "appointment date %s is in the past", req.Date)
	}
	if req.ConsumerID == "" || req.PetID == "" {
		return nil, NewBookingError(KindValidation, "missing consumer or pet id")
	}

	provider, err := e.Providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		if err == providerRepo.ErrNotFound {
			return nil, NewBookingError(KindNotFound, "unknown provider %q", req.ProviderID)
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}

	owned, err := e.Pets.IsOwnedBy(ctx, req.PetID, req.ConsumerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pet ownership: %w", err)
	}
	if !owned {
		return nil, NewBookingError(KindPetNotOwned, "pet %q does not belong to the booking consumer", req.PetID)
	}

	if err := e.validateSlot(ctx, req, day); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		ConsumerID: req.ConsumerID,
		PetID:      req.PetID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
		Status:     models.AppointmentPendingPayment,
		Note:       req.Note,
	}

	// The insert is the reservation: the partial unique index on the
	// active slot tuple decides the winner under concurrency.
	if err := e.Appointments.Insert(ctx, appt); err != nil {
		if err == appointmentRepo.ErrSlotTaken {
			return nil, NewBookingError(KindSlotTaken, "slot %s %s is already taken", req.Date, utils.FormatClock(req.Start))
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	sess, err := e.Gate.CreateCheckoutSession(ctx, models.CheckoutRequest{
		AppointmentID: appt.ID,
		ConsumerID:    req.ConsumerID,
		ProviderName:  provider.Name,
		ServiceKind:   provider.ServiceKind,
		Currency:      provider.Currency,
		AmountCents:   provider.SlotPrice,
		Description:   fmt.Sprintf("%s, %s-%s", req.Date, utils.FormatClock(req.Start), utils.FormatClock(req.End)),
	})
	if err != nil {
		// Without a checkout session the hold can never be paid; release
		// it now instead of waiting for the reaper.
		if relErr := e.release(ctx, appt.ID, "payment gate unavailable"); relErr != nil {
			logger.Error("failed to release reservation after gate failure",
				zap.String("appointmentID", appt.ID), zap.Error(relErr))
		}
		return nil, NewBookingError(KindGateUnavailable, "checkout session could not be created")
	}

	if err := e.Appointments.SetCheckoutID(ctx, appt.ID, sess.SessionID); err != nil {
		logger.Warn("failed to record checkout session on appointment",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	if e.Expiry != nil {
		if err := e.Expiry.ScheduleRelease(ctx, appt.ID); err != nil {
			// A failed or crashed payment still releases the hold via the
			// callback path; log and move on.
			logger.Warn("failed to schedule reservation expiry",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	logger.Info("slot reserved pending payment",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", req.ProviderID),
		zap.String("date", req.Date),
		zap.Int("start", req.Start))
	return &BookingResult{
		AppointmentID: appt.ID,
		CheckoutURL:   sess.RedirectURL,
		Status:        models.AppointmentPendingPayment,
	}, nil
}

// validateSlot checks that (date, start, end) lands exactly on a slot the
// provider's current windows produce. Occupancy is deliberately not checked
// here; the insert's unique index re-validates at commit time.
func (e *DefaultBookingEngine) validateSlot(ctx context.Context, req BookingRequest, day time.Time) error {
	schedule, err := e.Schedules.GetByProvider(ctx, req.ProviderID)
	if err != nil {
		if err == scheduleRepo.ErrNotFound {
			return NewBookingError(KindSlotInvalid, "provider has no availability set")
		}
		return fmt.Errorf("failed to fetch weekly schedule: %w", err)
	}

	for _, w := range schedule.WindowsFor(day.Weekday()) {
		for _, slot := range scheduling.BuildSlots(w, req.Date, schedule.SlotMinutes) {
			if slot.Start == req.Start && slot.End == req.End {
				return nil
			}
		}
	}
	return NewBookingError(KindSlotInvalid,
		"no %s slot at %s for this provider", req.Date, utils.FormatClock(req.Start))
}

func (e *DefaultBookingEngine) HandlePaymentOutcome(ctx context.Context, cb models.PaymentCallback) error {
	logger := utils.GetLogger()

	switch cb.Outcome {
	case models.PaymentOutcomeSuccess:
		err := e.Appointments.TransitionStatus(ctx,
			cb.AppointmentID,
			models.AppointmentPendingPayment,
			models.AppointmentConfirmed,
			cb.ProviderTransactionID,
			"")
		if err == appointmentRepo.ErrStaleStatus {
			// Duplicate or late callback for an already finalized
			// appointment; the first verdict stands.
			logger.Info("ignoring payment outcome for finalized appointment",
				zap.String("appointmentID", cb.AppointmentID))
			return nil
		}
		if err == appointmentRepo.ErrNotFound {
			return NewBookingError(KindNotFound, "unknown appointment %q", cb.AppointmentID)
		}
		if err != nil {
			return fmt.Errorf("failed to confirm appointment: %w", err)
		}
		logger.Info("appointment confirmed",
			zap.String("appointmentID", cb.AppointmentID),
			zap.String("transactionID", cb.ProviderTransactionID))
		return nil

	case models.PaymentOutcomeFailure:
		if err := e.release(ctx, cb.AppointmentID, "payment failed"); err != nil {
			return err
		}
		logger.Info("reservation released after payment failure",
			zap.String("appointmentID", cb.AppointmentID))
		return nil

	default:
		return NewBookingError(KindValidation, "unknown payment outcome %q", cb.Outcome)
	}
}

func (e *DefaultBookingEngine) ReleaseIfUnpaid(ctx context.Context, appointmentID string) error {
	logger := utils.GetLogger()
	if err := e.release(ctx, appointmentID, "reservation expired unpaid"); err != nil {
		return err
	}
	logger.Info("abandoned reservation released", zap.String("appointmentID", appointmentID))
	return nil
}

// release cancels a PENDING_PAYMENT appointment, which frees its slot: the
// partial unique index no longer counts the cancelled document. Appointments
// already confirmed or cancelled are left untouched.
func (e *DefaultBookingEngine) release(ctx context.Context, appointmentID, reason string) error {
	err := e.Appointments.TransitionStatus(ctx,
		appointmentID,
		models.AppointmentPendingPayment,
		models.AppointmentCancelled,
		"",
		reason)
	if err == appointmentRepo.ErrStaleStatus {
		return nil
	}
	if err == appointmentRepo.ErrNotFound {
		return NewBookingError(KindNotFound, "unknown appointment %q", appointmentID)
	}
	if err != nil {
		return fmt.Errorf("failed to release reservation: %w", err)
	}
	return nil
}

func (e *DefaultBookingEngine) Cancel(ctx context.Context, appointmentID, actorID string) error {
	appt, err := e.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			return NewBookingError(KindNotFound, "unknown appointment %q", appointmentID)
		}
		return fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if actorID != appt.ConsumerID && actorID != appt.ProviderID {
		return NewBookingError(KindForbidden, "appointment does not involve actor %q", actorID)
	}
	if appt.Status == models.AppointmentCancelled {
		return nil
	}

	err = e.Appointments.TransitionStatus(ctx,
		appointmentID, appt.Status, models.AppointmentCancelled, "", "cancelled by "+actorID)
	if err == appointmentRepo.ErrStaleStatus {
		// Lost a race with the reaper or the callback; cancelled either way.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return nil
}

func (e *DefaultBookingEngine) ListForConsumer(ctx context.Context, consumerID string) ([]models.AppointmentView, error) {
	appts, err := e.Appointments.ListByConsumer(ctx, consumerID)
	if err != nil {
		return nil, err
	}
	return e.decorate(appts), nil
}

func (e *DefaultBookingEngine) ListForProvider(ctx context.Context, providerID, fromDate, toDate string) ([]models.AppointmentView, error) {
	appts, err := e.Appointments.ListByProvider(ctx, providerID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return e.decorate(appts), nil
}

func (e *DefaultBookingEngine) decorate(appts []models.Appointment) []models.AppointmentView {
	now := e.now()
	views := make([]models.AppointmentView, 0, len(appts))
	for _, appt := range appts {
		views = append(views, models.AppointmentView{
			Appointment:   appt,
			DisplayStatus: DisplayStatus(&appt, now),
		})
	}
	return views
}
