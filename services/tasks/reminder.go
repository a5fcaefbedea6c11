package tasks

import (
	"encoding/json"
	"time"

	"fitbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "booking:reminder"

// reminderHour is the local hour on the session day when the reminder fires.
const reminderHour = 8

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler queues session-day reminders on the shared queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleBookingReminder enqueues a reminder for the morning of the session.
// Bookings for dates that are already past the fire time are skipped.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking models.Booking) error {
	day, err := time.ParseInLocation("2006-01-02", booking.Date, time.Local)
	if err != nil {
		return err
	}
	fireAt := day.Add(reminderHour * time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		TrainerID: booking.TrainerID,
		Date:      booking.Date,
		Start:     booking.Slot.StartingTime,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
