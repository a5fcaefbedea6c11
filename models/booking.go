package models

import "time"

// Booking status values. Post-payment bookings are always "approved";
// "pending" is reserved for a future pre-payment hold and is never written today.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a durable, paid reservation of a trainer's time slot.
type Booking struct {
	ID                string    `bson:"id" json:"id"`                                 // Unique booking identifier (UUID)
	TrainerID         string    `bson:"trainerId" json:"trainerId"`                   // Trainer who was booked
	UserID            string    `bson:"userId" json:"userId"`                         // User who made the booking
	Date              string    `bson:"date" json:"date"`                             // Session date in "YYYY-MM-DD" format
	Slot              TimeSlot  `bson:"slot" json:"slot"`                             // Snapshot of the slot taken at confirmation time
	Price             float64   `bson:"price" json:"price"`                           // Amount captured by the payment provider
	Currency          string    `bson:"currency" json:"currency"`                     // ISO currency code, lowercase
	Status            string    `bson:"status" json:"status"`                         // "pending", "approved" or "cancelled"
	IsPaid            bool      `bson:"isPaid" json:"isPaid"`                         // Set only by the webhook reconciler
	Conflict          bool      `bson:"conflict,omitempty" json:"conflict,omitempty"` // Collides with another paid booking; awaiting manual resolution
	ExternalSessionID string    `bson:"externalSessionId" json:"externalSessionId"`   // Payment provider session id, unique across the ledger
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}
