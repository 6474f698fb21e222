package routes

import (
	"net/http"
	"time"

	"pawmart/handlers"
	"pawmart/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers availability authoring and the
// provider-facing appointment listing.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public scheduling reads: the consumer's calendar and slot picker.
		api.GET("/:providerID/slots", hb.GetSlotsHandler)
		api.GET("/:providerID/calendar", hb.MonthActivityHandler)

		// Endpoints acting as the provider require provider credentials.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.PUT("/availability", hb.SetAvailabilityHandler)
		protected.GET("/availability", hb.GetAvailabilityHandler)
		protected.DELETE("/availability/windows/:windowID", hb.DeleteWindowHandler)
		protected.GET("/bookings", hb.ListProviderBookingsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthConsumerMiddleware())
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.POST("/:appointmentID/cancel", hb.CancelBookingHandler)
		bookingGroup.GET("/mine", hb.ListConsumerBookingsHandler)
	}
}

// RegisterPaymentRoutes registers the payment gate callback. The gate
// authenticates out of band; the endpoint stays outside the JWT groups.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/callback", hb.PaymentCallbackHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pawmart"})
	})
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
