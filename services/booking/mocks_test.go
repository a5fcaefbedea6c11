package booking_test

import (
	"context"

	"fitbook/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type mockTrainerRepo struct{ mock.Mock }

func (m *mockTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	args := m.Called(id)
	trainer, _ := args.Get(0).(*models.Trainer)
	return trainer, args.Error(1)
}

func (m *mockTrainerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Trainer, error) {
	args := m.Called(id, projection)
	trainer, _ := args.Get(0).(*models.Trainer)
	return trainer, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	usr, _ := args.Get(0).(*models.User)
	return usr, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	usr, _ := args.Get(0).(*models.User)
	return usr, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) CreateApproved(ctx context.Context, booking *models.Booking) (bool, error) {
	args := m.Called(ctx, booking)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) CountActiveOnSlot(ctx context.Context, trainerID, userID, date string, slot models.TimeSlot, excludeSessionID string) (int64, error) {
	args := m.Called(ctx, trainerID, userID, date, slot, excludeSessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) MarkConflict(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *mockBookingRepo) HasActiveConflict(trainerID, userID, date string, slot models.TimeSlot) (bool, error) {
	args := m.Called(trainerID, userID, date, slot)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) GetBySessionID(sessionID string) (*models.Booking, error) {
	args := m.Called(sessionID)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	args := m.Called(userID)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) ListByTrainer(trainerID string) ([]models.Booking, error) {
	args := m.Called(trainerID)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, intent models.CheckoutIntent) (*models.CheckoutSession, error) {
	args := m.Called(ctx, intent)
	sess, _ := args.Get(0).(*models.CheckoutSession)
	return sess, args.Error(1)
}

type mockReminderScheduler struct{ mock.Mock }

func (m *mockReminderScheduler) ScheduleBookingReminder(booking models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}
