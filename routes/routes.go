package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joaquinperez028/landingPageNahuel-sub003/handlers"
	"github.com/joaquinperez028/landingPageNahuel-sub003/middleware"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterAvailabilityRoutes sets up the public availability endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine) {
	r.GET("/api/availability", handlers.GetAvailability)
}

// RegisterBookingRoutes sets up the booking endpoints. All of them require an
// authenticated identity.
func RegisterBookingRoutes(r *gin.Engine) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", handlers.CreateBooking)
		bookingGroup.GET("/:id", handlers.GetBooking)
		bookingGroup.POST("/:id/cancel", handlers.CancelBooking)
	}
}

// RegisterAdminRoutes sets up the schedule registry endpoints.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/schedule-blocks", handlers.ListScheduleBlocks)
		adminGroup.POST("/schedule-blocks", handlers.UpsertScheduleBlock)
		adminGroup.POST("/schedule-blocks/:id/deactivate", handlers.DeactivateScheduleBlock)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r)
	RegisterBookingRoutes(r)
	RegisterAdminRoutes(r)
}
