package payment

import (
	"context"

	"fitbook/models"
)

// Gateway creates hosted checkout sessions with the payment provider. The
// returned session carries the provider's session id, which later keys the
// booking row once payment is confirmed.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, intent models.CheckoutIntent) (*models.CheckoutSession, error)
}
