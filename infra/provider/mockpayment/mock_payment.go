package mockpayment

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/payment"
	"github.com/google/uuid"
)

// MockPaymentProvider simulates hosted checkout for local development when
// no Stripe key is configured. Webhooks are accepted without a signature.
// This is NOT for production use.
type MockPaymentProvider struct {
	mu          sync.Mutex
	frontendURL string
	sessions    map[string]int64
}

var _ payment.Payment = (*MockPaymentProvider)(nil)

// NewMockPaymentProvider creates a new instance of MockPaymentProvider.
func NewMockPaymentProvider(frontendURL string) *MockPaymentProvider {
	return &MockPaymentProvider{
		frontendURL: strings.TrimRight(frontendURL, "/"),
		sessions:    make(map[string]int64),
	}
}

// CreateSession returns a session whose URL points straight at the success page.
func (m *MockPaymentProvider) CreateSession(
	_ context.Context,
	params *payment.SessionParams,
) (*payment.Session, error) {
	amount, err := payment.ToMinorUnits(params.Amount)
	if err != nil {
		return nil, err
	}
	id := "cs_mock_" + uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = amount
	m.mu.Unlock()
	return &payment.Session{
		ID:  id,
		URL: m.frontendURL + "/payment/success?session_id=" + id,
	}, nil
}

type mockEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string `json:"id"`
			CustomerEmail string `json:"customer_email"`
			Currency      string `json:"currency"`
		} `json:"object"`
	} `json:"data"`
}

// HandleWebhook decodes a Stripe-shaped event body. The signature is ignored.
func (m *MockPaymentProvider) HandleWebhook(
	_ context.Context,
	payload []byte,
	_ string,
) (*payment.PaymentEvent, error) {
	var ev mockEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, domain.NewAdapterError(payment.Adapter, domain.ErrInvalidInput, "Invalid webhook payload", err)
	}
	m.mu.Lock()
	amount := m.sessions[ev.Data.Object.ID]
	m.mu.Unlock()
	return &payment.PaymentEvent{
		ID:            ev.ID,
		Type:          payment.EventType(ev.Type),
		SessionID:     ev.Data.Object.ID,
		CustomerEmail: ev.Data.Object.CustomerEmail,
		AmountTotal:   amount,
		Currency:      ev.Data.Object.Currency,
		Status:        "paid",
	}, nil
}
