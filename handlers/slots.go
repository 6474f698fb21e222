package handlers

import (
	"net/http"
	"time"

	"pawmart/models"
	"pawmart/services/scheduling"
	"pawmart/utils"

	"github.com/gin-gonic/gin"
)

// slotResponse is the wire shape of one slot instance.
type slotResponse struct {
	SlotID         string `json:"slotId"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	OccupancyState string `json:"occupancyState"`
}

// GetSlotsHandler expands a provider's availability for one date. With
// ?free=true only FREE slots come back (the booking picker); without it
// both states do (the provider-facing listing).
func (h *SchedulingHandler) GetSlotsHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.Query("date")
	if providerID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID or date"})
		return
	}
	freeOnly := c.Query("free") == "true"

	slots, err := h.Service.GetSlotsForDate(c.Request.Context(), providerID, date)
	if err != nil {
		if err == scheduling.ErrDateInPast {
			utils.JSONErrorKind(c, http.StatusBadRequest, "DATE_IN_PAST", "no slots exist for past dates")
			return
		}
		if ve, ok := err.(*scheduling.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot query", "field": ve.Field, "message": ve.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slots", "message": err.Error()})
		return
	}

	out := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		if freeOnly && !s.Free() {
			continue
		}
		out = append(out, slotResponse{
			SlotID:         slotID(s),
			StartTime:      utils.FormatClock(s.Start),
			EndTime:        utils.FormatClock(s.End),
			OccupancyState: s.Occupancy,
		})
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": out})
}

// slotID derives a stable identifier for an on-demand slot instance; slots
// are never stored, so the tuple itself is the identity.
func slotID(s models.SlotInstance) string {
	return s.Date + "T" + utils.FormatClock(s.Start)
}

// MonthActivityHandler returns the calendar colouring projection for one
// visible month.
func (h *SchedulingHandler) MonthActivityHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID"})
		return
	}

	var query struct {
		Year  int `form:"year" binding:"required"`
		Month int `form:"month" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid year/month", "message": err.Error()})
		return
	}

	days, err := h.Service.MonthActivity(c.Request.Context(), providerID, query.Year, time.Month(query.Month))
	if err != nil {
		if ve, ok := err.(*scheduling.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar query", "field": ve.Field, "message": ve.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute month activity", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}
