package stripepayment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/payment"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const defaultDescription = "AutoConnect payment"

// sessionCreator is the part of the Stripe client used here.
// (*stripe.Client).V1CheckoutSessions satisfies it.
type sessionCreator interface {
	Create(ctx context.Context, params *stripe.CheckoutSessionCreateParams) (*stripe.CheckoutSession, error)
}

// StripePaymentProvider implements payment.Payment with Stripe Checkout.
type StripePaymentProvider struct {
	sessions    sessionCreator
	cfg         *config.Stripe
	frontendURL string
	logger      *slog.Logger
}

var _ payment.Payment = (*StripePaymentProvider)(nil)

// New creates a StripePaymentProvider. Success and cancel pages are
// resolved against frontendURL.
func New(cfg *config.Stripe, frontendURL string, logger *slog.Logger) *StripePaymentProvider {
	client := stripe.NewClient(cfg.ApiKey)
	return newWithSessions(client.V1CheckoutSessions, cfg, frontendURL, logger)
}

func newWithSessions(
	sessions sessionCreator,
	cfg *config.Stripe,
	frontendURL string,
	logger *slog.Logger,
) *StripePaymentProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &StripePaymentProvider{
		sessions:    sessions,
		cfg:         cfg,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      logger.With("provider", "stripe"),
	}
}

// CreateSession implements payment.Payment.
func (s *StripePaymentProvider) CreateSession(
	ctx context.Context,
	params *payment.SessionParams,
) (*payment.Session, error) {
	amount, err := payment.ToMinorUnits(params.Amount)
	if err != nil {
		return nil, err
	}
	description := params.Description
	if description == "" {
		description = defaultDescription
	}
	currency := strings.ToLower(s.cfg.Currency)

	sp := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.frontendURL + "/payment/success"),
		CancelURL:          stripe.String(s.frontendURL + "/payment/cancel"),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name: stripe.String(description)},
				UnitAmount: stripe.Int64(amount),
			},
			Quantity: stripe.Int64(1),
		}},
	}
	if params.CustomerEmail != "" {
		sp.CustomerEmail = stripe.String(params.CustomerEmail)
	}

	session, err := s.sessions.Create(ctx, sp)
	if err != nil {
		s.logger.Error(
			"failed to create checkout session",
			"error", err,
			"amount", amount,
			"currency", currency,
		)
		return nil, domain.NewAdapterError(
			payment.Adapter,
			domain.ErrRequestFailed,
			fmt.Sprintf("Payment session creation failed: %v", err),
			err,
		)
	}

	s.logger.Info("checkout session created", "session_id", session.ID, "amount", amount)
	return &payment.Session{ID: session.ID, URL: session.URL}, nil
}

// HandleWebhook implements payment.Payment. Only checkout session events
// carry session details; other verified events are returned with their type.
func (s *StripePaymentProvider) HandleWebhook(
	ctx context.Context,
	payload []byte,
	signature string,
) (*payment.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		s.cfg.SigningSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		return nil, domain.NewAdapterError(
			payment.Adapter,
			domain.ErrInvalidInput,
			"Invalid webhook signature",
			err,
		)
	}

	pe := &payment.PaymentEvent{ID: event.ID, Type: payment.EventType(event.Type)}
	switch pe.Type {
	case payment.EventCheckoutCompleted, payment.EventCheckoutExpired:
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, domain.NewAdapterError(
				payment.Adapter,
				domain.ErrInvalidResponseFormat,
				fmt.Sprintf("error parsing checkout session: %v", err),
				err,
			)
		}
		pe.SessionID = cs.ID
		pe.AmountTotal = cs.AmountTotal
		pe.Currency = string(cs.Currency)
		pe.Status = string(cs.PaymentStatus)
		pe.CustomerEmail = cs.CustomerEmail
		if cs.CustomerDetails != nil && cs.CustomerDetails.Email != "" {
			pe.CustomerEmail = cs.CustomerDetails.Email
		}
	}

	s.logger.Info("webhook verified", "event_id", pe.ID, "type", pe.Type, "session_id", pe.SessionID)
	return pe, nil
}
