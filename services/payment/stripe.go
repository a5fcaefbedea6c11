package payment

import (
	"context"
	"fmt"
	"math"

	"fitbook/config"
	"fitbook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeGateway implements Gateway on top of Stripe Checkout.
type StripeGateway struct {
	SuccessURL string
	CancelURL  string
}

// NewStripeGateway builds a gateway using the configured redirect targets.
// stripe.Key must already be set (done once in main).
func NewStripeGateway() *StripeGateway {
	return &StripeGateway{
		SuccessURL: config.AppConfig.CheckoutSuccessURL,
		CancelURL:  config.AppConfig.CheckoutCancelURL,
	}
}

// CreateCheckoutSession opens a one-off payment session for a single training
// session. The booking details ride along as opaque metadata so the webhook
// can rebuild the booking without any state held on our side.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, intent models.CheckoutIntent) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(g.SuccessURL),
		CancelURL:     stripe.String(g.CancelURL),
		CustomerEmail: stripe.String(intent.UserEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(intent.Currency),
					UnitAmount: stripe.Int64(int64(math.Round(intent.Price * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Training session with %s", intent.TrainerName)),
						Description: stripe.String(fmt.Sprintf("%s, %s - %s", intent.Date, intent.Slot.StartingTime, intent.Slot.EndingTime)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("trainerId", intent.TrainerID)
	params.AddMetadata("userId", intent.UserID)
	params.AddMetadata("bookingDate", intent.Date)
	params.AddMetadata("slotDay", intent.Slot.Day)
	params.AddMetadata("slotStart", intent.Slot.StartingTime)
	params.AddMetadata("slotEnd", intent.Slot.EndingTime)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe checkout session: %w", err)
	}

	return &models.CheckoutSession{
		SessionID:   sess.ID,
		RedirectURL: sess.URL,
	}, nil
}
