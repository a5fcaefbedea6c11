package routes

import (
	"net/http"
	"time"

	"fitbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "fitbook is up"})
	})
}

// RegisterTrainerRoutes registers the public trainer read endpoints.
func RegisterTrainerRoutes(r *gin.Engine, th *handlers.TrainerHandler) {
	api := r.Group("/api/trainers")
	{
		api.GET("/:trainerId", th.GetTrainerHandler)
		api.GET("/:trainerId/availability", th.GetTrainerAvailabilityHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, th *handlers.TrainerHandler, userMW gin.HandlerFunc) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterTrainerRoutes(r, th)
	RegisterBookingRoutes(r, bh, userMW)
}
