// Package smtpmail delivers email over SMTP with wneessen/go-mail.
package smtpmail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/provider/mail"
	gomail "github.com/wneessen/go-mail"
)

// dialAndSender is satisfied by *gomail.Client.
type dialAndSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// Sender implements mail.Sender.
type Sender struct {
	client dialAndSender
	from   string
	logger *slog.Logger
}

var _ mail.Sender = (*Sender)(nil)

// New builds an SMTP Sender. Authentication is only enabled when a
// username is configured.
func New(cfg *config.SMTP, logger *slog.Logger) (*Sender, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("SMTP_HOST is not set")
	}
	opts := []gomail.Option{gomail.WithTLSPortPolicy(gomail.TLSOpportunistic)}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return newWithClient(client, from, logger), nil
}

func newWithClient(client dialAndSender, from string, logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{client: client, from: from, logger: logger.With("provider", "smtp")}
}

// Send implements mail.Sender. Failures are logged and reported in the Result.
func (s *Sender) Send(ctx context.Context, msg mail.Message) mail.Result {
	m, err := s.build(msg)
	if err != nil {
		s.logger.Warn("email not built", "to", msg.To, "error", err)
		return mail.Result{Err: err}
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Error("email send failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return mail.Result{Err: fmt.Errorf("send email: %w", err)}
	}
	id := m.GetMessageID()
	s.logger.Info("email sent", "to", msg.To, "message_id", id)
	return mail.Result{Sent: true, MessageID: id}
}

func (s *Sender) build(msg mail.Message) (*gomail.Msg, error) {
	from := msg.From
	if from == "" {
		from = s.from
	}
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
