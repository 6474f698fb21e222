package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Provider availability authoring.
	SetAvailabilityHandler gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc
	DeleteWindowHandler    gin.HandlerFunc

	// Consumer-facing scheduling reads.
	GetSlotsHandler      gin.HandlerFunc
	MonthActivityHandler gin.HandlerFunc

	// Booking lifecycle.
	CreateBookingHandler        gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
	ListConsumerBookingsHandler gin.HandlerFunc
	ListProviderBookingsHandler gin.HandlerFunc

	// Payment gate callback.
	PaymentCallbackHandler gin.HandlerFunc
}
