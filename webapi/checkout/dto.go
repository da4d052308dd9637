package checkout

// CreateSessionRequest is the body of POST /api/payments/create-session.
// Amount is in whole currency units and must be a positive integer. It may be
// sent as a JSON number or a numeric string.
type CreateSessionRequest struct {
	Amount        any    `json:"amount" swaggertype:"number" example:"1500"`
	Description   string `json:"description" validate:"max=500"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

// ErrorBody is the failure body of create-session.
type ErrorBody struct {
	Error string `json:"error"`
}

// WebhookResponse acknowledges a verified webhook.
type WebhookResponse struct {
	Received bool   `json:"received"`
	Type     string `json:"type"`
}
