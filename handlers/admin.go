package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/joaquinperez028/landingPageNahuel-sub003/config"
	scheduleRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/schedule"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/booking"
	"github.com/joaquinperez028/landingPageNahuel-sub003/utils"
)

// ScheduleRepo and AvailabilityCache are wired from main at startup.
var (
	ScheduleRepo      scheduleRepo.ScheduleRepository
	AvailabilityCache *booking.AvailabilityCache
)

// ListScheduleBlocks returns the recurring blocks of a resource class,
// including inactive ones.
func ListScheduleBlocks(c *gin.Context) {
	class := models.ResourceClass(c.Query("class"))
	if class == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing class query parameter"})
		return
	}

	blocks, err := ScheduleRepo.ListByClass(c.Request.Context(), class)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list schedule blocks"})
		return
	}
	if blocks == nil {
		blocks = []models.RecurringBlock{}
	}
	c.JSON(http.StatusOK, gin.H{"class": class, "blocks": blocks})
}

// UpsertScheduleBlock creates or replaces a recurring block and invalidates
// availability for every class, since a block of one class shapes the
// offerable windows of the others.
func UpsertScheduleBlock(c *gin.Context) {
	var block models.RecurringBlock
	if err := c.ShouldBindJSON(&block); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if block.ResourceClass == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing resourceClass"})
		return
	}
	if block.Weekday < 0 || block.Weekday > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be between 0 (Sunday) and 6 (Saturday)"})
		return
	}
	if block.StartMinute < 0 || block.StartMinute >= 24*60 || block.DurationMinutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid block window"})
		return
	}

	if err := ScheduleRepo.Upsert(c.Request.Context(), &block); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save schedule block"})
		return
	}

	invalidateAllClasses(c)
	c.JSON(http.StatusCreated, block)
}

// DeactivateScheduleBlock soft-deletes a recurring block.
func DeactivateScheduleBlock(c *gin.Context) {
	id := c.Param("id")

	if err := ScheduleRepo.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule block not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate schedule block"})
		return
	}

	invalidateAllClasses(c)
	c.JSON(http.StatusOK, gin.H{"id": id, "active": false})
}

func invalidateAllClasses(c *gin.Context) {
	for _, cfg := range config.AppConfig.Classes {
		class := cfg.Class
		if err := AvailabilityCache.Invalidate(c.Request.Context(), class); err != nil {
			utils.GetLogger().Error("availability cache invalidation failed",
				zap.String("class", string(class)), zap.Error(err))
		}
	}
}
