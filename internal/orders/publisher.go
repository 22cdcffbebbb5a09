package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/ariefcatur/go-antique-storefront/internal/kafka"
)

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, o Order) error
}

type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, Order) error { return nil }

// KafkaPublisher wraps an OrderPlaced envelope and hands it to the async
// producer.
type KafkaPublisher struct {
	Producer *kafkax.Producer
	Service  string
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, o Order) error {
	env, err := NewPlacedEnvelope(o, p.Service)
	if err != nil {
		return err
	}
	b, err := kafkax.Marshal(env)
	if err != nil {
		return err
	}
	return p.Producer.Publish(ctx, PartitionKey(o.ID), b,
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func NewPlacedEnvelope(o Order, producer string) (Envelope, error) {
	payload, err := kafkax.Marshal(PlacedPayload(o))
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: o.ID,
		Payload:       payload,
	}, nil
}
