// Package mail sends best-effort transactional email.
package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/mail"
	"github.com/shopspring/decimal"
)

// ErrMailDisabled is reported in a Result when no SMTP transport is configured.
var ErrMailDisabled = errors.New("email delivery is not configured")

type Service struct {
	sender mail.Sender
	from   string
	logger *slog.Logger
}

// New creates a mail Service. sender may be nil, in which case every send
// reports ErrMailDisabled.
func New(sender mail.Sender, from string, logger *slog.Logger) *Service {
	return &Service{sender: sender, from: from, logger: logger}
}

// Send delivers msg. Validation problems are returned as errors; delivery
// failures only ever appear in the Result.
func (s *Service) Send(ctx context.Context, msg mail.Message) (mail.Result, error) {
	if strings.TrimSpace(msg.To) == "" || strings.TrimSpace(msg.Subject) == "" ||
		(strings.TrimSpace(msg.Text) == "" && strings.TrimSpace(msg.HTML) == "") {
		return mail.Result{}, domain.ErrRequiredFieldsMissing
	}
	if msg.From == "" {
		msg.From = s.from
	}
	if s.sender == nil {
		s.logger.Warn("email skipped", "to", msg.To, "reason", ErrMailDisabled)
		return mail.Result{Err: ErrMailDisabled}, nil
	}
	res := s.sender.Send(ctx, msg)
	if res.Err != nil {
		s.logger.Error("email not delivered", "to", msg.To, "error", res.Err)
	}
	return res, nil
}

// SendPaymentConfirmation tells the payer their checkout completed.
// amountMinor is in minor units.
func (s *Service) SendPaymentConfirmation(
	ctx context.Context,
	to, sessionID string,
	amountMinor int64,
	currency string,
) mail.Result {
	amount := decimal.New(amountMinor, -2).StringFixed(2)
	currency = strings.ToUpper(currency)
	res, err := s.Send(ctx, mail.Message{
		To:      to,
		Subject: "Payment received",
		Text: fmt.Sprintf(
			"Thank you! We received your payment of %s %s.\nReference: %s\n",
			amount, currency, sessionID,
		),
		HTML: fmt.Sprintf(
			"<p>Thank you! We received your payment of <strong>%s %s</strong>.</p><p>Reference: %s</p>",
			amount, currency, html.EscapeString(sessionID),
		),
	})
	if err != nil {
		return mail.Result{Err: err}
	}
	return res
}
