package handlers

import (
	"errors"
	"net/http"

	"fitbook/models"
	"fitbook/services/booking"
	"fitbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the checkout and payment-reconciliation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateCheckoutSessionHandler handles POST /api/bookings/checkout-session/:trainerId.
// The authenticated user comes from the request context set by the JWT
// middleware, never from the payload.
func (h *BookingHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Service.CreateCheckoutIntent(c.Request.Context(), c.Param("trainerId"), userID, req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// StripeWebhookHandler handles POST /api/bookings/webhook. The body must be
// read raw: any re-serialization before the signature check would break it.
func (h *BookingHandler) StripeWebhookHandler(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unable to read request body", err.Error())
		return
	}
	signature := c.GetHeader("Stripe-Signature")

	if err := h.Service.HandleProviderEvent(c.Request.Context(), payload, signature); err != nil {
		switch booking.CodeOf(err) {
		case booking.CodeBadSignature:
			utils.JSONError(c, http.StatusBadRequest, "invalid webhook signature", "")
		case booking.CodeBadEvent:
			utils.JSONError(c, http.StatusBadRequest, "invalid event payload", "")
		default:
			h.Logger.Error("webhook processing failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to process event", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// GetBookingBySessionHandler handles GET /api/bookings/session/:sessionId.
// The success page polls it after the checkout redirect; 404 means the
// payment webhook has not landed yet.
func (h *BookingHandler) GetBookingBySessionHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return
	}

	bk, err := h.Service.GetBookingBySession(c.Param("sessionId"), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve booking", err.Error())
		return
	}
	if bk == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListUserBookingsHandler handles GET /api/bookings/user for the caller's dashboard.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return
	}

	bookings, err := h.Service.ListUserBookings(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListTrainerBookingsHandler handles GET /api/bookings/trainer/:trainerId.
func (h *BookingHandler) ListTrainerBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListTrainerBookings(c.Param("trainerId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var be *booking.Error
	if !errors.As(err, &be) {
		h.Logger.Error("checkout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create checkout session", "")
		return
	}

	status := http.StatusInternalServerError
	switch be.Code {
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeInvalidSlot, booking.CodeDateUnavailable:
		status = http.StatusBadRequest
	case booking.CodeConflict:
		status = http.StatusConflict
	case booking.CodeProvider:
		status = http.StatusBadGateway
	}
	utils.JSONError(c, status, be.Message, "")
}
