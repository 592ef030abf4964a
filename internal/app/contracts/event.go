package contracts

import "context"

// EventPublisher emits domain events. Publishing is best effort: callers log a failure and
// carry on.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}
