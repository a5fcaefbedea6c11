package models

// CheckoutIntent carries everything the payment provider needs to collect
// payment for one session. It is never persisted; the booking row is only
// written once the provider confirms payment.
type CheckoutIntent struct {
	TrainerID   string
	TrainerName string
	UserID      string
	UserEmail   string
	Date        string // "YYYY-MM-DD"
	Slot        TimeSlot
	Price       float64 // snapshot of the trainer's rate at issuance time
	Currency    string
}

// CheckoutSession is the provider-side session created for a CheckoutIntent.
type CheckoutSession struct {
	SessionID   string `json:"externalSessionId"`
	RedirectURL string `json:"redirectUrl"`
}

// CheckoutRequest is the payload for POST /api/bookings/checkout-session/:trainerId.
type CheckoutRequest struct {
	TimeSlot    TimeSlot `json:"timeSlot" binding:"required"`
	BookingDate string   `json:"bookingDate" binding:"required"` // ISO date
}
