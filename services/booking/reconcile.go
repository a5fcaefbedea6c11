package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitbook/models"
	"fitbook/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const eventCheckoutCompleted = "checkout.session.completed"

// HandleProviderEvent authenticates an inbound payment-provider event and
// performs the idempotent state transition that creates the booking.
//
// Deliveries are at-least-once and unordered, so the only correctness
// mechanism is the ledger's unique constraint on the session id, not any
// in-process coordination.
func (s *DefaultBookingService) HandleProviderEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	logger := utils.GetLogger()

	// Authenticity first: constant-time signature check over the raw body,
	// before any typed parse of the event. The endpoint may be pinned to a
	// different API version than the SDK, so version mismatch is not an error.
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidHeader) || errors.Is(err, webhook.ErrNotSigned) ||
			errors.Is(err, webhook.ErrNoValidSignature) || errors.Is(err, webhook.ErrTooOld) {
			return newError(CodeBadSignature, "webhook signature verification failed")
		}
		return newError(CodeBadEvent, "malformed event payload")
	}

	if event.Type != eventCheckoutCompleted {
		// Acked so the provider stops retrying; nothing to reconcile.
		logger.Debug("ignoring provider event", zap.String("type", string(event.Type)))
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return newError(CodeBadEvent, "malformed checkout session payload")
	}

	bk, err := bookingFromSession(&sess)
	if err != nil {
		return err
	}

	created, err := s.BookingRepo.CreateApproved(ctx, bk)
	if err != nil {
		return fmt.Errorf("ledger write failed for session %s: %w", sess.ID, err)
	}
	if !created {
		// Replay of an already-reconciled session; terminal-stable, ack it.
		logger.Info("replayed payment event, booking already recorded",
			zap.String("sessionId", sess.ID))
		return nil
	}

	// Authoritative conflict check, after the atomic insert. A competing paid
	// booking from another session is flagged, never dropped: the money has
	// already moved, so it goes to manual reconciliation instead.
	n, err := s.BookingRepo.CountActiveOnSlot(ctx, bk.TrainerID, bk.UserID, bk.Date, bk.Slot, bk.ExternalSessionID)
	if err != nil {
		logger.Error("conflict check failed after ledger commit",
			zap.String("bookingId", bk.ID), zap.Error(err))
	} else if n > 0 {
		if err := s.BookingRepo.MarkConflict(ctx, bk.ID); err != nil {
			logger.Error("failed to flag conflicted booking",
				zap.String("bookingId", bk.ID), zap.Error(err))
		} else {
			logger.Warn("reconciliation conflict recorded",
				zap.String("bookingId", bk.ID),
				zap.String("trainerId", bk.TrainerID),
				zap.String("date", bk.Date))
		}
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(*bk); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingId", bk.ID), zap.Error(err))
		}
	}

	logger.Info("booking confirmed",
		zap.String("bookingId", bk.ID),
		zap.String("sessionId", sess.ID),
		zap.String("trainerId", bk.TrainerID),
		zap.String("userId", bk.UserID))
	return nil
}

// bookingFromSession rebuilds the booking row from the session metadata and
// the captured amount. The captured amount, not the trainer's live rate, is
// the price of record: a rate edit mid-checkout cannot change what was paid.
func bookingFromSession(sess *stripe.CheckoutSession) (*models.Booking, error) {
	meta := sess.Metadata
	bk := &models.Booking{
		ID:        uuid.New().String(),
		TrainerID: meta["trainerId"],
		UserID:    meta["userId"],
		Date:      meta["bookingDate"],
		Slot: models.TimeSlot{
			Day:          meta["slotDay"],
			StartingTime: meta["slotStart"],
			EndingTime:   meta["slotEnd"],
		},
		Price:             float64(sess.AmountTotal) / 100,
		Currency:          string(sess.Currency),
		Status:            models.BookingStatusApproved,
		IsPaid:            true,
		ExternalSessionID: sess.ID,
		CreatedAt:         time.Now(),
	}
	if sess.ID == "" || bk.TrainerID == "" || bk.UserID == "" || bk.Date == "" ||
		bk.Slot.Day == "" || bk.Slot.StartingTime == "" || bk.Slot.EndingTime == "" {
		return nil, newError(CodeBadEvent, "payment event is missing booking metadata")
	}
	return bk, nil
}
