package models

import "time"

// Trainer holds the public profile and scheduling data for a trainer.
// Profile management lives elsewhere; the booking engine only reads these fields.
type Trainer struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Email       string     `bson:"email" json:"email"`
	Bio         string     `bson:"bio,omitempty" json:"bio,omitempty"`
	TicketPrice float64    `bson:"ticketPrice" json:"ticketPrice"` // price per session, in major currency units
	Currency    string     `bson:"currency" json:"currency"`       // ISO currency code, lowercase (e.g. "usd")
	TimeSlots   []TimeSlot `bson:"timeSlots" json:"timeSlots"`     // recurring weekly availability
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// OwnsSlot reports whether the given slot is one of the trainer's current windows.
func (t Trainer) OwnsSlot(slot TimeSlot) bool {
	for _, s := range t.TimeSlots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
