package orders

import (
	"encoding/json"
	"time"

	"github.com/ariefcatur/go-antique-storefront/internal/cart"
)

const EventOrderPlaced = "OrderPlaced"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID string        `json:"order_id"`
	Area    string        `json:"area"`
	Payment PaymentMethod `json:"payment"`
	Items   []cart.Item   `json:"items"`
	Total   int           `json:"total"`
}

func PlacedPayload(o Order) OrderPlacedPayload {
	return OrderPlacedPayload{
		OrderID: o.ID,
		Area:    o.Area,
		Payment: o.Payment,
		Items:   o.Items,
		Total:   o.Total,
	}
}
