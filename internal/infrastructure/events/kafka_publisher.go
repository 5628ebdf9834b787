package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

var ErrNoKafkaBrokers = errors.New("no kafka brokers configured")

// KafkaPublisher sends billing events as JSON through a synchronous producer,
// keyed so every event of one fee or session lands on the same partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, clientID string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoKafkaBrokers
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		log.Printf("[events][kafka] producer init failed brokers=%v err=%v", brokers, err)
		return nil, err
	}
	log.Printf("[events][kafka] producer initialized brokers=%v", brokers)
	return NewKafkaPublisherFromProducer(producer), nil
}

func NewKafkaPublisherFromProducer(producer sarama.SyncProducer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[events][kafka] marshal failed topic=%s key=%s err=%v", topic, key, err)
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(data),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Printf("[events][kafka] send failed topic=%s key=%s err=%v", topic, key, err)
		return err
	}
	log.Printf("[events][kafka] published topic=%s key=%s partition=%d offset=%d", topic, key, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
