package bookingRepo

import (
	"context"

	"fitbook/models"
)

// BookingRepository is the single owner of the booking ledger. The checkout
// issuer never writes through it; only the webhook reconciler creates rows or
// flips payment state.
type BookingRepository interface {
	// CreateApproved atomically inserts a paid, approved booking keyed by its
	// external session id. It reports false with a nil error when a booking
	// with the same session id already exists, meaning a webhook replay that
	// is safe to ack.
	CreateApproved(ctx context.Context, booking *models.Booking) (created bool, err error)
	// CountActiveOnSlot counts active bookings for the exact
	// (trainer, user, date, slot) tuple coming from a different session.
	CountActiveOnSlot(ctx context.Context, trainerID, userID, date string, slot models.TimeSlot, excludeSessionID string) (int64, error)
	// MarkConflict flags an existing booking for manual reconciliation.
	MarkConflict(ctx context.Context, bookingID string) error
	// HasActiveConflict reports whether any active booking occupies the tuple.
	HasActiveConflict(trainerID, userID, date string, slot models.TimeSlot) (bool, error)
	// GetBySessionID retrieves a booking by its external session id, or nil.
	GetBySessionID(sessionID string) (*models.Booking, error)
	// ListByUser retrieves a user's bookings, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListByTrainer retrieves a trainer's bookings, newest first.
	ListByTrainer(trainerID string) ([]models.Booking, error)
}
