package payment

import (
	"context"
	"fmt"
	"strings"

	"pawmart/config"
	"pawmart/models"
	"pawmart/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripeGate implements Gate on Stripe Checkout Sessions.
type StripeGate struct {
	SuccessURL string
	CancelURL  string
}

// NewStripeGate builds a gate using the configured landing pages. The
// landing pages mirror the payment outcome for the consumer but carry no
// authority over appointment state; only the callback does.
func NewStripeGate() *StripeGate {
	return &StripeGate{
		SuccessURL: config.AppConfig.CheckoutSuccessURL,
		CancelURL:  config.AppConfig.CheckoutCancelURL,
	}
}

func (g *StripeGate) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	logger := utils.GetLogger()

	if req.AppointmentID == "" {
		return nil, fmt.Errorf("checkout request missing appointment id")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.SuccessURL),
		CancelURL:  stripe.String(g.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%s appointment with %s", req.ServiceKind, req.ProviderName)),
						Description: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(req.AppointmentID),
	}
	params.Context = ctx
	params.AddMetadata("appointmentId", req.AppointmentID)
	params.AddMetadata("consumerId", req.ConsumerID)

	sess, err := session.New(params)
	if err != nil {
		logger.Error("stripe checkout session creation failed",
			zap.String("appointmentID", req.AppointmentID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGateUnavailable, err)
	}

	logger.Info("checkout session created",
		zap.String("appointmentID", req.AppointmentID),
		zap.String("sessionID", sess.ID))
	return &models.CheckoutSession{
		SessionID:   sess.ID,
		RedirectURL: sess.URL,
	}, nil
}
