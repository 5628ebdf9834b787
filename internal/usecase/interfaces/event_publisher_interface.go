package interfaces

import "context"

// IEventPublisher emits billing events (fee paid, checkout outcome) to a broker.
type IEventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
