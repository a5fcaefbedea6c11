package models

// ReminderPayload is the task body queued for the session-day reminder worker.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	TrainerID string `json:"trainerId"`
	Date      string `json:"date"`
	Start     string `json:"start"`
}
