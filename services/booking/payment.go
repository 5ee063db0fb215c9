package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// StripePaymentHandler issues Stripe Checkout links for admitted
// reservations. The global stripe.Key is set once at startup.
type StripePaymentHandler struct {
	SuccessURL string
	CancelURL  string
}

// NewStripePaymentHandler constructs a StripePaymentHandler with the redirect
// URLs Checkout needs.
func NewStripePaymentHandler(successURL, cancelURL string) *StripePaymentHandler {
	return &StripePaymentHandler{SuccessURL: successURL, CancelURL: cancelURL}
}

// CreatePaymentLink creates a single-item Checkout session priced from the
// reservation's snapshot and returns its URL. The reservation ID travels as
// the client reference so webhooks can reconcile payments later.
func (h *StripePaymentHandler) CreatePaymentLink(ctx context.Context, res *models.Reservation) (string, error) {
	if stripe.Key == "" {
		return "", fmt.Errorf("stripe key not configured")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(res.ID),
		SuccessURL:        stripe.String(h.SuccessURL),
		CancelURL:         stripe.String(h.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(res.Currency),
					UnitAmount: stripe.Int64(int64(res.PriceSnapshot * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Session %s", res.ConfirmationCode)),
						Description: stripe.String(fmt.Sprintf("%s on %s", res.ResourceClass, res.Window.Start.Format("Jan 2 15:04 MST"))),
					},
				},
			},
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}
