package cart

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/ariefcatur/go-antique-storefront/internal/catalog"
	"github.com/ariefcatur/go-antique-storefront/internal/storage"
)

// Store owns the serialized cart under a single key. Every mutation is a
// read-modify-write of the whole slot; concurrent writers race and the last
// write wins.
type Store struct {
	kv      storage.KV
	catalog *catalog.Provider
	key     string
	log     *zap.Logger
}

func NewStore(kv storage.KV, cat *catalog.Provider, key string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, catalog: cat, key: key, log: log}
}

// Items returns the current cart. Missing or unreadable data yields an
// empty cart; only storage failures are returned as errors.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	items, err := decode(raw)
	if err != nil {
		s.log.Warn("discarding malformed cart", zap.String("key", s.key), zap.Error(err))
		return []Item{}, nil
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, items []Item) error {
	raw, err := encode(normalize(items))
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}

// Add puts qty units of productID in the cart. Unknown products are
// ignored, qty below 1 counts as 1 and the line saturates at MaxQuantity.
func (s *Store) Add(ctx context.Context, productID string, qty int) error {
	p, ok := s.catalog.Find(productID)
	if !ok {
		return nil
	}
	qty = min(max(qty, 1), MaxQuantity)
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = min(items[i].Quantity+qty, MaxQuantity)
			return s.save(ctx, items)
		}
	}
	items = append(items, Item{
		ID:       p.ID,
		Quantity: qty,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
	})
	return s.save(ctx, items)
}

func (s *Store) Remove(ctx context.Context, productID string) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	out := items[:0]
	for _, it := range items {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return nil
	}
	return s.save(ctx, out)
}

// UpdateQuantity sets the quantity from raw user input. Input that does not
// start with an integer, or parses below 1, becomes 1.
// Values above MaxQuantity are clamped.
func (s *Store) UpdateQuantity(ctx context.Context, productID, raw string) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = max(1, ParseQuantity(raw))
			return s.save(ctx, items)
		}
	}
	return nil
}

// Clear removes the cart key entirely.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}

func (s *Store) TotalAmount(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

func (s *Store) TotalItemCount(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	return Count(items), nil
}

// ParseQuantity reads a leading integer the way form inputs are usually
// parsed: leading spaces, an optional sign, then digits; the rest is
// ignored. It returns 1 when no digits are found and never more than
// MaxQuantity.
func ParseQuantity(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 1
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow
		if s[0] == '-' {
			return 1
		}
		return MaxQuantity
	}
	return min(n, MaxQuantity)
}
