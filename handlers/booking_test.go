package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawmart/middleware"
	"pawmart/models"
	"pawmart/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns canned answers so handler tests exercise only
// binding, auth plumbing and error mapping.
type stubBookingService struct {
	bookErr    error
	bookResult *booking.BookingResult
	lastBook   booking.BookingRequest

	cancelErr   error
	callbackErr error
	lastCB      models.PaymentCallback

	views []models.AppointmentView
}

func (s *stubBookingService) Book(_ context.Context, req booking.BookingRequest) (*booking.BookingResult, error) {
	s.lastBook = req
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return s.bookResult, nil
}

func (s *stubBookingService) HandlePaymentOutcome(_ context.Context, cb models.PaymentCallback) error {
	s.lastCB = cb
	return s.callbackErr
}

func (s *stubBookingService) ReleaseIfUnpaid(context.Context, string) error { return nil }

func (s *stubBookingService) Cancel(context.Context, string, string) error { return s.cancelErr }

func (s *stubBookingService) ListForConsumer(context.Context, string) ([]models.AppointmentView, error) {
	return s.views, nil
}

func (s *stubBookingService) ListForProvider(context.Context, string, string, string) ([]models.AppointmentView, error) {
	return s.views, nil
}

func newBookingRouter(svc *stubBookingService, consumerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	inject := func(c *gin.Context) {
		if consumerID != "" {
			c.Set(middleware.ContextConsumerID, consumerID)
		}
	}
	r.POST("/api/bookings", inject, h.CreateBookingHandler)
	r.POST("/api/bookings/:appointmentID/cancel", inject, h.CancelBookingHandler)
	r.GET("/api/bookings/mine", inject, h.ListConsumerBookingsHandler)
	r.POST("/api/payments/callback", h.PaymentCallbackHandler)
	return r
}

func bookingBody() []byte {
	b, _ := json.Marshal(map[string]interface{}{
		"providerId":      "prov-1",
		"appointmentDate": "2026-03-09",
		"startTime":       "09:00:00",
		"endTime":         "09:30:00",
		"petId":           "pet-1",
		"note":            "nail trim",
	})
	return b
}

func TestCreateBookingHandler_Success(t *testing.T) {
	svc := &stubBookingService{bookResult: &booking.BookingResult{
		AppointmentID: "appt-1",
		CheckoutURL:   "https://checkout.example/appt-1",
		Status:        models.AppointmentPendingPayment,
	}}
	router := newBookingRouter(svc, "cons-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewReader(bookingBody()))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result booking.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "appt-1", result.AppointmentID)
	assert.Equal(t, "https://checkout.example/appt-1", result.CheckoutURL)

	// Clock strings must arrive at the service as minutes, with the
	// authenticated consumer attached.
	assert.Equal(t, 540, svc.lastBook.Start)
	assert.Equal(t, 570, svc.lastBook.End)
	assert.Equal(t, "cons-1", svc.lastBook.ConsumerID)
}

func TestCreateBookingHandler_RequiresAuth(t *testing.T) {
	router := newBookingRouter(&stubBookingService{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewReader(bookingBody()))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBookingHandler_RejectsBadClock(t *testing.T) {
	router := newBookingRouter(&stubBookingService{}, "cons-1")

	body, _ := json.Marshal(map[string]interface{}{
		"providerId":      "prov-1",
		"appointmentDate": "2026-03-09",
		"startTime":       "quarter past nine",
		"endTime":         "09:30:00",
		"petId":           "pet-1",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandler_ErrorKindMapping(t *testing.T) {
	tests := []struct {
		kind       string
		wantStatus int
	}{
		{booking.KindSlotTaken, http.StatusConflict},
		{booking.KindDateInPast, http.StatusBadRequest},
		{booking.KindSlotInvalid, http.StatusBadRequest},
		{booking.KindPetNotOwned, http.StatusForbidden},
		{booking.KindNotFound, http.StatusNotFound},
		{booking.KindGateUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			svc := &stubBookingService{bookErr: booking.NewBookingError(tt.kind, "nope")}
			router := newBookingRouter(svc, "cons-1")

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewReader(bookingBody()))
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Kind string `json:"kind"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}

func TestCancelBookingHandler_ForbiddenForStranger(t *testing.T) {
	svc := &stubBookingService{cancelErr: booking.NewBookingError(booking.KindForbidden, "not yours")}
	router := newBookingRouter(svc, "cons-2")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bookings/appt-1/cancel", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPaymentCallbackHandler(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingRouter(svc, "")

	body, _ := json.Marshal(models.PaymentCallback{
		AppointmentID:         "appt-1",
		Outcome:               models.PaymentOutcomeSuccess,
		ProviderTransactionID: "txn-42",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/payments/callback", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "appt-1", svc.lastCB.AppointmentID)
	assert.Equal(t, "txn-42", svc.lastCB.ProviderTransactionID)
}

func TestPaymentCallbackHandler_RejectsMissingFields(t *testing.T) {
	router := newBookingRouter(&stubBookingService{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/payments/callback", bytes.NewReader([]byte(`{"outcome":"SUCCESS"}`)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
