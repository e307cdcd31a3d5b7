// Package command holds the write side: every state change goes through one
// of these services, which persist through repository.Store, refresh the
// Redis read model and publish a domain event once the write has committed.
package command

import "context"

// EventPublisher is satisfied by *events.Publisher and events.Discard.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}
