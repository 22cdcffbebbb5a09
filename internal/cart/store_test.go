package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ariefcatur/go-antique-storefront/internal/catalog"
	"github.com/ariefcatur/go-antique-storefront/internal/storage"
)

const key = "cart:test"

func newStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return NewStore(kv, catalog.Default(), key, zap.NewNop()), kv
}

func TestItemsEmptyWhenMissing(t *testing.T) {
	s, _ := newStore(t)
	items, err := s.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestItemsMalformedIsEmptyAndLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	kv := storage.NewMemory()
	s := NewStore(kv, catalog.Default(), key, zap.New(core))
	ctx := context.Background()

	for _, raw := range []string{"{not json", "42", `{"v":7,"items":[]}`} {
		require.NoError(t, kv.Set(ctx, key, raw))
		items, err := s.Items(ctx)
		require.NoError(t, err)
		assert.Empty(t, items, raw)
	}
	assert.Equal(t, 3, logs.FilterMessage("discarding malformed cart").Len())
}

func TestItemsReadsLegacyArray(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, key, `[{"id":"s3","name":"Brass Ganesha Idol","price":9500,"image":"x"},{"id":"v2","quantity":2,"name":"Antique Wall Clock","price":6900}]`))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)

	require.NoError(t, s.Add(ctx, "s3", 1))
	raw, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.Contains(t, raw, `"v":1`)
}

func TestAddSameProductAccumulates(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "s1", 1))
	require.NoError(t, s.Add(ctx, "s1", 3))
	require.NoError(t, s.Add(ctx, "s1", 0))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, Item{
		ID:       "s1",
		Quantity: 5,
		Name:     "Bronze Temple Idol",
		Price:    18500,
		Image:    "https://c8.alamy.com/comp/C55B57/antique-pieces-on-sale-in-india-C55B57.jpg",
	}, items[0])
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	for _, id := range []string{"v2", "s1", "v2", "k1"} {
		require.NoError(t, s.Add(ctx, id, 1))
	}
	items, err := s.Items(ctx)
	require.NoError(t, err)
	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"v2", "s1", "k1"}, ids)
}

func TestAddUnknownProductIsNoop(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, "s1", 1))
	before, _ := kv.Get(ctx, key)

	require.NoError(t, s.Add(ctx, "missing", 1))

	after, _ := kv.Get(ctx, key)
	assert.Equal(t, before, after)
}

func TestRemove(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, "s1", 1))
	require.NoError(t, s.Add(ctx, "c1", 1))

	require.NoError(t, s.Remove(ctx, "s1"))
	require.NoError(t, s.Remove(ctx, "nope"))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)
}

func TestUpdateQuantity(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, "s1", 1))

	cases := map[string]int{
		"4":    4,
		" 7 ":  7,
		"3abc": 3,
		"2.9":  2,
		"abc":  1,
		"":     1,
		"0":    1,
		"-5":   1,
	}
	for raw, want := range cases {
		require.NoError(t, s.UpdateQuantity(ctx, "s1", raw))
		items, err := s.Items(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, items[0].Quantity, "raw=%q", raw)
	}

	require.NoError(t, s.UpdateQuantity(ctx, "absent", "9"))
	items, _ := s.Items(ctx)
	assert.Len(t, items, 1)
}

func TestClear(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, "s1", 2))

	require.NoError(t, s.Clear(ctx))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	ok, _ := kv.Exists(ctx, key)
	assert.False(t, ok)
}

func TestTotals(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	amount, err := s.TotalAmount(ctx)
	require.NoError(t, err)
	assert.Zero(t, amount)

	require.NoError(t, s.Add(ctx, "s3", 2))
	require.NoError(t, s.Add(ctx, "k2", 1))

	amount, err = s.TotalAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9500*2+1900, amount)

	count, err := s.TotalItemCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

type failingKV struct{ storage.KV }

func (failingKV) Get(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

func TestStorageErrorsPropagate(t *testing.T) {
	s := NewStore(failingKV{}, catalog.Default(), key, nil)
	_, err := s.Items(context.Background())
	assert.EqualError(t, err, "connection refused")
	assert.Error(t, s.Add(context.Background(), "s1", 1))
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 12, ParseQuantity("12"))
	assert.Equal(t, 5, ParseQuantity("+5"))
	assert.Equal(t, -2, ParseQuantity("-2x"))
	assert.Equal(t, 1, ParseQuantity("x2"))
	assert.Equal(t, 1, ParseQuantity("-"))
	assert.Equal(t, MaxQuantity, ParseQuantity("10000"))
	assert.Equal(t, MaxQuantity, ParseQuantity("99999999999999999999"))
	assert.Equal(t, 1, ParseQuantity("-99999999999999999999"))
}

func TestQuantityIsCapped(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, "s1", 1))

	require.NoError(t, s.UpdateQuantity(ctx, "s1", "99999999999999999999"))
	items, err := s.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxQuantity, items[0].Quantity)

	amount, err := s.TotalAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxQuantity*18500, amount)

	require.NoError(t, s.Add(ctx, "s1", 1))
	items, err = s.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxQuantity, items[0].Quantity)

	require.NoError(t, s.Add(ctx, "k2", int(^uint(0)>>1)))
	items, err = s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, MaxQuantity, items[1].Quantity)

	amount, err = s.TotalAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxQuantity*(18500+1900), amount)
}
