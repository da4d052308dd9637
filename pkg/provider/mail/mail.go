// Package mail defines the outbound email adapter.
package mail

import (
	"context"
)

// Message is one outbound email. HTML is optional.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Result reports the outcome of a send. A failed send is reported here and
// is never returned as an error.
type Result struct {
	Sent      bool
	MessageID string
	Err       error
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, msg Message) Result
}
