package booking

import "fitbook/models"

// GetBookingBySession retrieves the booking reconciled from a checkout
// session, scoped to its owner. A nil booking means the webhook has not been
// processed yet; a session belonging to someone else is indistinguishable
// from an unknown one.
func (s *DefaultBookingService) GetBookingBySession(sessionID, userID string) (*models.Booking, error) {
	bk, err := s.BookingRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if bk == nil || bk.UserID != userID {
		return nil, nil
	}
	return bk, nil
}

// ListUserBookings retrieves a user's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByUser(userID)
}

// ListTrainerBookings retrieves the bookings held against a trainer.
func (s *DefaultBookingService) ListTrainerBookings(trainerID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByTrainer(trainerID)
}
