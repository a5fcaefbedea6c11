package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitbook/models"
	"fitbook/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var mondaySlot = models.TimeSlot{Day: "Monday", StartingTime: "09:00", EndingTime: "10:00"}

// nextWeekday returns the next future date falling on the given weekday,
// formatted as the API expects.
func nextWeekday(wd time.Weekday) string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func testTrainer() *models.Trainer {
	return &models.Trainer{
		ID:          "tr_1",
		Name:        "Alex Coach",
		Email:       "alex@example.com",
		TicketPrice: 45,
		Currency:    "usd",
		TimeSlots:   []models.TimeSlot{mondaySlot},
	}
}

func testUser() *models.User {
	return &models.User{ID: "u_1", Name: "Jordan", Email: "jordan@example.com"}
}

func newCheckoutFixture() (*booking.DefaultBookingService, *mockTrainerRepo, *mockUserRepo, *mockBookingRepo, *mockGateway) {
	trainers := &mockTrainerRepo{}
	users := &mockUserRepo{}
	ledger := &mockBookingRepo{}
	gateway := &mockGateway{}
	svc := &booking.DefaultBookingService{
		TrainerRepo: trainers,
		UserRepo:    users,
		BookingRepo: ledger,
		Gateway:     gateway,
	}
	return svc, trainers, users, ledger, gateway
}

func TestCreateCheckoutIntent_Success(t *testing.T) {
	svc, trainers, users, ledger, gateway := newCheckoutFixture()
	date := nextWeekday(time.Monday)

	trainers.On("GetByID", "tr_1").Return(testTrainer(), nil)
	users.On("GetByID", "u_1").Return(testUser(), nil)
	ledger.On("HasActiveConflict", "tr_1", "u_1", date, mondaySlot).Return(false, nil)

	var captured models.CheckoutIntent
	gateway.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("models.CheckoutIntent")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(models.CheckoutIntent)
		}).
		Return(&models.CheckoutSession{SessionID: "cs_test_1", RedirectURL: "https://pay.example/cs_test_1"}, nil)

	sess, err := svc.CreateCheckoutIntent(context.Background(), "tr_1", "u_1", models.CheckoutRequest{
		TimeSlot:    mondaySlot,
		BookingDate: date,
	})

	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "cs_test_1", sess.SessionID)
	assert.Equal(t, "https://pay.example/cs_test_1", sess.RedirectURL)

	// The intent carries a full snapshot: rate at issuance, slot copy, metadata.
	assert.Equal(t, 45.0, captured.Price)
	assert.Equal(t, "usd", captured.Currency)
	assert.Equal(t, mondaySlot, captured.Slot)
	assert.Equal(t, date, captured.Date)
	assert.Equal(t, "jordan@example.com", captured.UserEmail)

	trainers.AssertExpectations(t)
	users.AssertExpectations(t)
	ledger.AssertExpectations(t)
	gateway.AssertExpectations(t)
	// The issuer must never write to the ledger.
	ledger.AssertNotCalled(t, "CreateApproved", mock.Anything, mock.Anything)
}

func TestCreateCheckoutIntent_TrainerNotFound(t *testing.T) {
	svc, trainers, _, _, gateway := newCheckoutFixture()
	trainers.On("GetByID", "missing").Return(nil, nil)

	sess, err := svc.CreateCheckoutIntent(context.Background(), "missing", "u_1", models.CheckoutRequest{
		TimeSlot:    mondaySlot,
		BookingDate: nextWeekday(time.Monday),
	})

	assert.Nil(t, sess)
	assert.Equal(t, booking.CodeNotFound, booking.CodeOf(err))
	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckoutIntent_UserNotFound(t *testing.T) {
	svc, trainers, users, _, gateway := newCheckoutFixture()
	trainers.On("GetByID", "tr_1").Return(testTrainer(), nil)
	users.On("GetByID", "ghost").Return(nil, nil)

	sess, err := svc.CreateCheckoutIntent(context.Background(), "tr_1", "ghost", models.CheckoutRequest{
		TimeSlot:    mondaySlot,
		BookingDate: nextWeekday(time.Monday),
	})

	assert.Nil(t, sess)
	assert.Equal(t, booking.CodeNotFound, booking.CodeOf(err))
	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckoutIntent_SlotNotOwnedByTrainer(t *testing.T) {
	svc, trainers, users, _, gateway := newCheckoutFixture()
	trainers.On("GetByID", "tr_1").Return(testTrainer(), nil)
	users.On("GetByID", "u_1").Return(testUser(), nil)

	foreign := models.TimeSlot{Day: "Tuesday", StartingTime: "11:00", EndingTime: "12:00"}
	sess, err := svc.CreateCheckoutIntent(context.Background(), "tr_1", "u_1", models.CheckoutRequest{
		TimeSlot:    foreign,
		BookingDate: nextWeekday(time.Tuesday),
	})

	assert.Nil(t, sess)
	assert.Equal(t, booking.CodeInvalidSlot, booking.CodeOf(err))
	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckoutIntent_DateValidation(t *testing.T) {
	cases := []struct {
		name string
		date string
	}{
		{"malformed date", "07-09-2026"},
		{"past date", "2020-01-06"},
		{"wrong weekday", nextWeekday(time.Wednesday)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, trainers, users, _, gateway := newCheckoutFixture()
			trainers.On("GetByID", "tr_1").Return(testTrainer(), nil)
			users.On("GetByID", "u_1").Return(testUser(), nil)

			sess, err := svc.CreateCheckoutIntent(context.Background(), "tr_1", "u_1", models.CheckoutRequest{
				TimeSlot:    mondaySlot,
				BookingDate: tc.date,
			})

			assert.Nil(t, sess)
			assert.Equal(t, booking.CodeDateUnavailable, booking.CodeOf(err))
			gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCheckoutIntent_TodayRejectedEastOfUTC(t *testing.T) {
	// In a zone ahead of UTC, today's date parsed as UTC midnight would look
	// strictly future. It must still be rejected as not bookable.
	oldLocal := time.Local
	time.Local = time.FixedZone("UTC+9", 9*60*60)
	defer func() { time.Local = oldLocal }()

	now := time.Now()
	today := now.Format("2006-01-02")
	todaySlot := models.TimeSlot{Day: now.Weekday().String(), StartingTime: "09:00", EndingTime: "10:00"}

	svc, trainers, users, _, gateway := newCheckoutFixture()
	trainer := testTrainer()
	trainer.TimeSlots = []models.TimeSlot{todaySlot}
	trainers.On("GetByID", "tr_1").Return(trainer, nil)
	users.On("GetByID", "u_1").Return(testUser(), nil)

	sess, err := svc.CreateCheckoutIntent(context.Background(), "tr_1", "u_1", models.CheckoutRequest{
		TimeSlot:    todaySlot,
		BookingDate: today,
	})

	assert.Nil(t, sess)
	assert.Equal(t, booking.CodeDateUnavailable, booking.CodeOf(err))
	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckoutIntent_AdvisoryConflict(t *testing.T) {
	svc, trainers, users, ledger, gateway := newCheckoutFixture()
	date := nextWeekday(time.Monday)
	trainers.On("GetByID", "tr_1").Return(testTrainer(), nil)
	users.On("GetByID", "u_1").Return(testUser(), nil)
	ledger.On("HasActiveConflict", "tr_1", "u_1", date, mondaySlot).Return(true, nil)

	sess, err := svc.CreateCheckoutIntent(context.Background(), "tr_1", "u_1", models.CheckoutRequest{
		TimeSlot:    mondaySlot,
		BookingDate: date,
	})

	assert.Nil(t, sess)
	assert.Equal(t, booking.CodeConflict, booking.CodeOf(err))
	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckoutIntent_GatewayFailureIsRetryable(t *testing.T) {
	svc, trainers, users, ledger, gateway := newCheckoutFixture()
	date := nextWeekday(time.Monday)
	trainers.On("GetByID", "tr_1").Return(testTrainer(), nil)
	users.On("GetByID", "u_1").Return(testUser(), nil)
	ledger.On("HasActiveConflict", "tr_1", "u_1", date, mondaySlot).Return(false, nil)
	gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, errors.New("stripe: connection reset"))

	sess, err := svc.CreateCheckoutIntent(context.Background(), "tr_1", "u_1", models.CheckoutRequest{
		TimeSlot:    mondaySlot,
		BookingDate: date,
	})

	assert.Nil(t, sess)
	assert.Equal(t, booking.CodeProvider, booking.CodeOf(err))
	// No ledger write on upstream failure either.
	ledger.AssertNotCalled(t, "CreateApproved", mock.Anything, mock.Anything)
}
