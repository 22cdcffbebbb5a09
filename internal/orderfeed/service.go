package orderfeed

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/ariefcatur/go-antique-storefront/internal/kafka"
	"github.com/ariefcatur/go-antique-storefront/internal/orders"
	"github.com/ariefcatur/go-antique-storefront/internal/storage"
)

// Service records placed orders from the order topic. Redelivered events
// are skipped by event id.
type Service struct {
	KV          storage.KV
	Log         *zap.Logger
	ServiceName string
}

// HandleOrderPlaced is installed as the consumer handler.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		// poison message: log and commit
		s.Log.Warn("undecodable envelope", zap.Int64("offset", m.Offset), zap.Error(err))
		return nil
	}
	if env.EventType != orders.EventOrderPlaced {
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
	if err != nil {
		s.Log.Warn("undecodable payload", zap.String("event_id", env.EventID), zap.Error(err))
		return nil
	}

	// claim the event id before logging so concurrent redeliveries log once
	claimed, err := s.KV.SetNX(ctx, storage.DedupKey(s.ServiceName, env.EventID), p.OrderID, storage.TTLDedup)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	s.Log.Info("order placed",
		zap.String("order_id", p.OrderID),
		zap.String("area", p.Area),
		zap.String("payment", string(p.Payment)),
		zap.Int("lines", len(p.Items)),
		zap.Int("total", p.Total),
		zap.Time("occurred_at", env.OccurredAt),
	)
	return nil
}
