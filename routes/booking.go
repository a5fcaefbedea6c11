package routes

import (
	"fitbook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
//
// The webhook endpoint is deliberately outside the authenticated group: it is
// called by the payment provider, and its only credential is the signature
// header over the raw body.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, userMW gin.HandlerFunc) {
	api := r.Group("/api/bookings")
	{
		api.POST("/webhook", bh.StripeWebhookHandler)

		protected := api.Group("")
		protected.Use(userMW)
		protected.POST("/checkout-session/:trainerId", bh.CreateCheckoutSessionHandler)
		protected.GET("/session/:sessionId", bh.GetBookingBySessionHandler)
		protected.GET("/user", bh.ListUserBookingsHandler)
		protected.GET("/trainer/:trainerId", bh.ListTrainerBookingsHandler)
	}
}
