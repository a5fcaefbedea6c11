package booking

import (
	"context"
	"fmt"
	"time"

	"fitbook/models"
	"fitbook/services/availability"
	"fitbook/utils"

	"go.uber.org/zap"
)

// CreateCheckoutIntent validates the booking request and asks the payment
// provider for a hosted checkout session. No booking row is written here;
// the webhook reconciler creates it once payment is actually confirmed, so an
// abandoned checkout can never leave a ghost reservation behind.
func (s *DefaultBookingService) CreateCheckoutIntent(ctx context.Context, trainerID, userID string, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	logger := utils.GetLogger()

	trainer, err := s.TrainerRepo.GetByID(trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trainer: %w", err)
	}
	if trainer == nil {
		return nil, newError(CodeNotFound, "trainer %s not found", trainerID)
	}

	usr, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, newError(CodeNotFound, "user %s not found", userID)
	}

	if !trainer.OwnsSlot(req.TimeSlot) {
		return nil, newError(CodeInvalidSlot, "the selected time slot is not offered by this trainer")
	}

	// Parse in the server's zone so "today" and the requested date share a
	// location; otherwise the strictly-future check drifts east of UTC.
	now := time.Now()
	date, err := time.ParseInLocation("2006-01-02", req.BookingDate, now.Location())
	if err != nil {
		return nil, newError(CodeDateUnavailable, "bookingDate must be an ISO date (YYYY-MM-DD)")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !date.After(today) {
		return nil, newError(CodeDateUnavailable, "bookingDate must be in the future")
	}
	if !availability.IsDateAvailable(date, trainer.TimeSlots) {
		return nil, newError(CodeDateUnavailable, "the trainer is not available on %s", req.BookingDate)
	}

	// Advisory only: a concurrent checkout for the same slot can slip past
	// this check. The ledger's conflict flag sorts that out at reconciliation.
	conflict, err := s.BookingRepo.HasActiveConflict(trainerID, userID, req.BookingDate, req.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to check for booking conflicts: %w", err)
	}
	if conflict {
		return nil, newError(CodeConflict, "you already hold a booking for this slot; pick another date or time")
	}

	currency := trainer.Currency
	if currency == "" {
		currency = "usd"
	}
	intent := models.CheckoutIntent{
		TrainerID:   trainer.ID,
		TrainerName: trainer.Name,
		UserID:      usr.ID,
		UserEmail:   usr.Email,
		Date:        req.BookingDate,
		Slot:        req.TimeSlot,
		Price:       trainer.TicketPrice, // rate snapshot: later price edits don't touch this checkout
		Currency:    currency,
	}

	sess, err := s.Gateway.CreateCheckoutSession(ctx, intent)
	if err != nil {
		logger.Error("payment provider rejected checkout session",
			zap.String("trainerId", trainerID), zap.String("userId", userID), zap.Error(err))
		return nil, newError(CodeProvider, "payment provider is unavailable, please try again")
	}

	logger.Info("checkout session created",
		zap.String("sessionId", sess.SessionID),
		zap.String("trainerId", trainerID),
		zap.String("userId", userID),
		zap.String("date", req.BookingDate))
	return sess, nil
}
