package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// GetAvailability returns the offerable slots per day for a resource class.
// Query params: class (required), from and to as YYYY-MM-DD (both default to
// today).
func GetAvailability(c *gin.Context) {
	class := models.ResourceClass(c.Query("class"))
	if class == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing class query parameter"})
		return
	}

	now := time.Now().UTC()
	from := now
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	days, err := BookingService.GetAvailability(c.Request.Context(), class, from, to)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	if days == nil {
		days = []models.DayAvailability{}
	}
	c.JSON(http.StatusOK, gin.H{
		"class": class,
		"days":  days,
	})
}
