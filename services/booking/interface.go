package booking

import (
	"context"

	bookingRepo "fitbook/database/repository/booking"
	trainerRepo "fitbook/database/repository/trainer"
	userRepo "fitbook/database/repository/user"
	"fitbook/models"
	"fitbook/services/payment"
)

// BookingService drives the checkout and payment-reconciliation flow.
type BookingService interface {
	// CreateCheckoutIntent validates the request and opens a payment session.
	// It writes nothing to the ledger: an abandoned checkout leaves no trace.
	CreateCheckoutIntent(ctx context.Context, trainerID, userID string, req models.CheckoutRequest) (*models.CheckoutSession, error)
	// HandleProviderEvent authenticates an inbound payment-provider event and,
	// for a first-seen payment success, commits the booking.
	HandleProviderEvent(ctx context.Context, payload []byte, signatureHeader string) error
	// GetBookingBySession retrieves the caller's booking created from a
	// checkout session. It returns nil while the payment webhook has not
	// landed yet, so the success page can poll until the row appears.
	GetBookingBySession(sessionID, userID string) (*models.Booking, error)
	// ListUserBookings retrieves a user's bookings for their dashboard.
	ListUserBookings(userID string) ([]models.Booking, error)
	// ListTrainerBookings retrieves the bookings held against a trainer.
	ListTrainerBookings(trainerID string) ([]models.Booking, error)
}

// ReminderScheduler queues a session-day reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	TrainerRepo   trainerRepo.TrainerRepository
	UserRepo      userRepo.UserRepository
	BookingRepo   bookingRepo.BookingRepository
	Gateway       payment.Gateway
	WebhookSecret string
	Reminders     ReminderScheduler // optional
}
