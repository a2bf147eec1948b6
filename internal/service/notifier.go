package service

import "context"

// Notifier sends customer-facing messages. Every call made by the services is
// fire-and-forget: a send failure is logged by the caller and never becomes
// the triggering operation's failure.
type Notifier interface {
	SendWelcome(ctx context.Context, email, name string, requestID uint) error
	SendStatusUpdate(ctx context.Context, email, name, status string, requestID uint) error
}
