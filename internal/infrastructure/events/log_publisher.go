package events

import (
	"context"
	"encoding/json"
	"log"

	"jobmarket_billing/internal/usecase/interfaces"
)

// LogPublisher writes events to the process log. Used when no broker is configured.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, topic string, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	log.Printf("[events][log] topic=%s key=%s payload=%s", topic, key, data)
	return nil
}
