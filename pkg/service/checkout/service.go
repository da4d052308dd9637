// Package checkout creates hosted payment sessions and reacts to their
// completion callbacks.
package checkout

import (
	"context"
	"log/slog"

	"github.com/autoconnect/backend/pkg/provider/mail"
	"github.com/autoconnect/backend/pkg/provider/payment"
)

// Notifier delivers the payment confirmation. *mail service satisfies it.
type Notifier interface {
	SendPaymentConfirmation(
		ctx context.Context,
		to, sessionID string,
		amountMinor int64,
		currency string,
	) mail.Result
}

// Service provides checkout operations
type Service struct {
	provider payment.Payment
	notifier Notifier
	logger   *slog.Logger
}

// New creates a checkout service. notifier may be nil.
func New(provider payment.Payment, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{provider: provider, notifier: notifier, logger: logger}
}

// CreateSession validates the amount and starts a hosted checkout session.
func (s *Service) CreateSession(
	ctx context.Context,
	params *payment.SessionParams,
) (*payment.Session, error) {
	log := s.logger.With("context", "CreateSession", "amount", params.Amount)
	if _, err := payment.ToMinorUnits(params.Amount); err != nil {
		log.Warn("checkout rejected", "error", err)
		return nil, err
	}
	session, err := s.provider.CreateSession(ctx, params)
	if err != nil {
		log.Error("checkout session not created", "error", err)
		return nil, err
	}
	log.Info("checkout session created", "sessionID", session.ID)
	return session, nil
}

// HandleWebhook verifies the callback and, for a completed session, sends a
// best-effort confirmation email. A failed email never fails the webhook.
func (s *Service) HandleWebhook(
	ctx context.Context,
	payload []byte,
	signature string,
) (*payment.PaymentEvent, error) {
	event, err := s.provider.HandleWebhook(ctx, payload, signature)
	if err != nil {
		s.logger.Warn("webhook rejected", "error", err)
		return nil, err
	}
	log := s.logger.With("context", "HandleWebhook", "eventID", event.ID, "type", event.Type)

	switch event.Type {
	case payment.EventCheckoutCompleted:
		log.Info("checkout completed", "sessionID", event.SessionID, "amount", event.AmountTotal)
		if s.notifier == nil || event.CustomerEmail == "" {
			break
		}
		res := s.notifier.SendPaymentConfirmation(
			ctx, event.CustomerEmail, event.SessionID, event.AmountTotal, event.Currency,
		)
		if res.Err != nil {
			log.Warn("confirmation email not sent", "error", res.Err)
		}
	case payment.EventCheckoutExpired:
		log.Info("checkout expired", "sessionID", event.SessionID)
	default:
		log.Debug("webhook event ignored")
	}
	return event, nil
}
