package smtpmail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/provider/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func TestSend(t *testing.T) {
	client := &mockClient{}
	var sent []*gomail.Msg
	client.On("DialAndSendWithContext", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]*gomail.Msg) }).
		Return(nil)

	res := newWithClient(client, "noreply@autoconnect.test", nil).Send(context.Background(), mail.Message{
		To:      "buyer@example.com",
		Subject: "Payment received",
		Text:    "Thanks!",
		HTML:    "<p>Thanks!</p>",
	})

	require.NoError(t, res.Err)
	assert.True(t, res.Sent)
	assert.NotEmpty(t, res.MessageID)
	require.Len(t, sent, 1)

	var buf bytes.Buffer
	_, err := sent[0].WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "Subject: Payment received")
	assert.Contains(t, raw, "<noreply@autoconnect.test>")
	assert.Contains(t, raw, "text/html")
}

func TestSend_FailureIsReportedNotReturned(t *testing.T) {
	client := &mockClient{}
	client.On("DialAndSendWithContext", mock.Anything, mock.Anything).Return(errors.New("535 auth failed"))

	res := newWithClient(client, "noreply@autoconnect.test", nil).Send(context.Background(), mail.Message{
		To: "buyer@example.com", Subject: "s", Text: "t",
	})
	assert.False(t, res.Sent)
	assert.ErrorContains(t, res.Err, "535 auth failed")
}

func TestSend_InvalidAddress(t *testing.T) {
	client := &mockClient{}
	res := newWithClient(client, "noreply@autoconnect.test", nil).Send(context.Background(), mail.Message{
		To: "not an address", Subject: "s", Text: "t",
	})
	assert.False(t, res.Sent)
	assert.Error(t, res.Err)
	client.AssertNotCalled(t, "DialAndSendWithContext", mock.Anything, mock.Anything)
}

func TestNew(t *testing.T) {
	_, err := New(&config.SMTP{}, nil)
	assert.Error(t, err)

	s, err := New(&config.SMTP{Host: "smtp.example.com", Port: 587, Username: "u@example.com", Password: "p"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", s.from)
}
