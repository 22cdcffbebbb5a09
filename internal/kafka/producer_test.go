package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	fail   bool
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("broker down")
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return nil
}

func TestProducerFlushesOnClose(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriter(w, 16, nil)
	p.Start(context.Background())

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, p.Publish(context.Background(), []byte(k), []byte("v")))
	}
	p.Close()
	p.WaitClosed()

	assert.Len(t, w.msgs, 3)
	assert.True(t, w.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), []byte("d"), nil), ErrProducerClosed)
	p.Close()
}

func TestProducerSurvivesWriteErrors(t *testing.T) {
	w := &fakeWriter{fail: true}
	p := NewProducerWithWriter(w, 4, nil)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	require.NoError(t, p.Publish(context.Background(), []byte("a"), []byte("v")))
	cancel()
	p.WaitClosed()

	assert.Empty(t, w.msgs)
	assert.True(t, w.closed)
}

func TestPublishHonoursContext(t *testing.T) {
	p := NewProducerWithWriter(&fakeWriter{}, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, nil, nil), context.Canceled)
}

func TestUnwrapPayload(t *testing.T) {
	type payload struct {
		OrderID string `json:"order_id"`
	}
	got, err := UnwrapPayload[payload](MustMarshal(map[string]string{"order_id": "id-1"}))
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.OrderID)

	_, err = UnwrapPayload[payload]([]byte("nope"))
	assert.Error(t, err)
	assert.Panics(t, func() { MustMarshal(make(chan int)) })
}
