package handlers

import (
	"net/http"

	"pawmart/middleware"
	"pawmart/models"
	"pawmart/services/booking"
	"pawmart/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking submission, cancellation, listings and
// the payment callback.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler builds a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

func consumerFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextConsumerID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Consumer not authenticated"})
		return "", false
	}
	consumerID, ok := v.(string)
	if !ok || consumerID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid consumer ID in context"})
		return "", false
	}
	return consumerID, true
}

// CreateBookingHandler reserves a slot and answers with the checkout
// redirect target, or a structured error kind the client can branch on.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	consumerID, ok := consumerFromContext(c)
	if !ok {
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := utils.ParseClock(input.StartTime)
	if err != nil {
		utils.JSONErrorKind(c, http.StatusBadRequest, booking.KindValidation, err.Error())
		return
	}
	end, err := utils.ParseClock(input.EndTime)
	if err != nil {
		utils.JSONErrorKind(c, http.StatusBadRequest, booking.KindValidation, err.Error())
		return
	}

	result, err := h.Service.Book(c.Request.Context(), booking.BookingRequest{
		ProviderID: input.ProviderID,
		Date:       input.Date,
		Start:      start,
		End:        end,
		ConsumerID: consumerID,
		PetID:      input.PetID,
		Note:       input.Note,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CancelBookingHandler marks the appointment cancelled on behalf of the
// authenticated consumer.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	consumerID, ok := consumerFromContext(c)
	if !ok {
		return
	}

	appointmentID := c.Param("appointmentID")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), appointmentID, consumerID); err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// ListConsumerBookingsHandler returns the authenticated consumer's
// appointments with display statuses.
func (h *BookingHandler) ListConsumerBookingsHandler(c *gin.Context) {
	consumerID, ok := consumerFromContext(c)
	if !ok {
		return
	}

	views, err := h.Service.ListForConsumer(c.Request.Context(), consumerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// ListProviderBookingsHandler returns the authenticated provider's
// appointments, optionally bounded by ?from=&to= dates.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	views, err := h.Service.ListForProvider(c.Request.Context(), providerID, c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// PaymentCallbackHandler receives the payment gate's verdict and finalizes
// or rolls back the reservation. The consumer's landing page redirect is a
// UX mirror only; this callback is the authority.
func (h *BookingHandler) PaymentCallbackHandler(c *gin.Context) {
	var cb models.PaymentCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid callback payload", "details": err.Error()})
		return
	}

	if err := h.Service.HandlePaymentOutcome(c.Request.Context(), cb); err != nil {
		h.Logger.Error("payment callback processing failed",
			zap.String("appointmentID", cb.AppointmentID), zap.Error(err))
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Outcome recorded"})
}

// respondBookingError maps booking error kinds onto HTTP statuses.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	kind := booking.ErrorKind(err)
	switch kind {
	case booking.KindSlotTaken:
		utils.JSONErrorKind(c, http.StatusConflict, kind, err.Error())
	case booking.KindDateInPast, booking.KindSlotInvalid, booking.KindValidation:
		utils.JSONErrorKind(c, http.StatusBadRequest, kind, err.Error())
	case booking.KindPetNotOwned, booking.KindForbidden:
		utils.JSONErrorKind(c, http.StatusForbidden, kind, err.Error())
	case booking.KindNotFound:
		utils.JSONErrorKind(c, http.StatusNotFound, kind, err.Error())
	case booking.KindGateUnavailable:
		utils.JSONErrorKind(c, http.StatusBadGateway, kind, err.Error())
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed", "message": err.Error()})
	}
}
