package payment

import (
	"context"
)

// Payment is the hosted-checkout payment provider.
type Payment interface {
	// CreateSession starts a hosted checkout session for a whole-unit amount.
	CreateSession(
		ctx context.Context,
		params *SessionParams,
	) (*Session, error)

	// HandleWebhook verifies a provider callback and decodes it.
	HandleWebhook(
		ctx context.Context,
		payload []byte,
		signature string,
	) (*PaymentEvent, error)
}
