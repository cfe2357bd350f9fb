// Package notify dispatches best-effort text messages. Failures are logged
// and swallowed; a notification must never fail the request that triggered it.
package notify

import "context"

// Sender is the outbound messaging capability.
type Sender interface {
	// Send delivers a text message to the given phone number.
	Send(ctx context.Context, toNumber, body string) error
}

// NoopSender is wired when messaging credentials are missing.
type NoopSender struct{}

// Ensure NoopSender implements Sender
var _ Sender = (*NoopSender)(nil)

// Send discards the message.
func (NoopSender) Send(ctx context.Context, toNumber, body string) error {
	return nil
}
