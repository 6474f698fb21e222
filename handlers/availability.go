package handlers

import (
	"net/http"

	"pawmart/middleware"
	"pawmart/models"
	"pawmart/services/scheduling"
	"pawmart/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes availability authoring and slot queries.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
}

// NewSchedulingHandler builds a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Service: svc}
}

// providerFromContext reads the authenticated provider id set by the auth
// middleware.
func providerFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextProviderID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return "", false
	}
	providerID, ok := v.(string)
	if !ok || providerID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid provider ID in context"})
		return "", false
	}
	return providerID, true
}

// SetAvailabilityHandler replaces the authenticated provider's weekly
// schedule.
func (h *SchedulingHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability setup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	windows, err := parseWindowInputs(req.Windows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability window", "message": err.Error()})
		return
	}

	schedule, err := h.Service.SetAvailability(c.Request.Context(), providerID, windows, req.SlotDurationMinutes)
	if err != nil {
		if ve, ok := err.(*scheduling.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability", "field": ve.Field, "message": ve.Message})
			return
		}
		logger.Error("Failed to set availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set availability", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Availability saved; provider is bookable",
		"schedule": schedule,
	})
}

// GetAvailabilityHandler returns the authenticated provider's current week.
func (h *SchedulingHandler) GetAvailabilityHandler(c *gin.Context) {
	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	schedule, err := h.Service.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// DeleteWindowHandler removes one window from the authenticated provider's
// week.
func (h *SchedulingHandler) DeleteWindowHandler(c *gin.Context) {
	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	windowID := c.Param("windowID")
	if windowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing window ID in path"})
		return
	}

	if err := h.Service.DeleteWindow(c.Request.Context(), providerID, windowID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete window", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Window deleted"})
}

func parseWindowInputs(inputs []models.WindowInput) ([]models.AvailabilityWindow, error) {
	windows := make([]models.AvailabilityWindow, 0, len(inputs))
	for _, in := range inputs {
		day, err := utils.ParseWeekday(in.DayOfWeek)
		if err != nil {
			return nil, err
		}
		start, err := utils.ParseClock(in.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := utils.ParseClock(in.EndTime)
		if err != nil {
			return nil, err
		}
		windows = append(windows, models.AvailabilityWindow{
			Weekday: day,
			Start:   start,
			End:     end,
		})
	}
	return windows, nil
}
