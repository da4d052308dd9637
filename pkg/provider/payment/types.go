package payment

import (
	"math"

	"github.com/autoconnect/backend/pkg/domain"
)

// Adapter is the AdapterError.Adapter value for payment failures.
const Adapter = "payment"

// ErrInvalidAmountValue is returned for a missing, non-positive or fractional amount.
var ErrInvalidAmountValue = domain.NewAdapterError(Adapter, domain.ErrInvalidAmount, "Invalid amount value", nil)

// SessionParams holds the inputs for CreateSession.
type SessionParams struct {
	// Amount in whole currency units; must be a positive integer.
	Amount        float64
	Description   string
	CustomerEmail string
}

// Session is a created hosted checkout session.
type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"sessionUrl"`
}

// EventType is the provider event name.
type EventType string

const (
	EventCheckoutCompleted EventType = "checkout.session.completed"
	EventCheckoutExpired   EventType = "checkout.session.expired"
)

// PaymentEvent is a verified webhook callback.
type PaymentEvent struct {
	ID            string
	Type          EventType
	SessionID     string
	CustomerEmail string
	AmountTotal   int64
	Currency      string
	Status        string
}

// ToMinorUnits converts a whole-unit amount to minor units (amount * 100).
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 || amount != math.Trunc(amount) {
		return 0, ErrInvalidAmountValue
	}
	if amount > math.MaxInt64/100 {
		return 0, ErrInvalidAmountValue
	}
	return int64(amount) * 100, nil
}
