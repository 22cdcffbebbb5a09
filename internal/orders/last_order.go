package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ariefcatur/go-antique-storefront/internal/storage"
)

// LastOrderRepo keeps the most recent order of one session; each Save
// replaces the previous record.
type LastOrderRepo struct {
	KV  storage.KV
	Key string
}

func (r *LastOrderRepo) Save(ctx context.Context, o Order) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return r.KV.Set(ctx, r.Key, string(b))
}

// Get returns storage.ErrNotFound when no order was placed yet.
func (r *LastOrderRepo) Get(ctx context.Context) (Order, error) {
	raw, err := r.KV.Get(ctx, r.Key)
	if err != nil {
		return Order{}, err
	}
	var o Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return Order{}, fmt.Errorf("decode last order: %w", err)
	}
	return o, nil
}
