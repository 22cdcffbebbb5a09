package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("key not found")

// KV is a string-keyed, string-valued slot store. Get returns ErrNotFound
// for missing keys; Delete of a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// SetNX writes value only if key is absent and reports whether it did.
	// A positive ttl expires the key; zero keeps it forever.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}
