package storage

import (
	"context"
	"fmt"

	"github.com/ariefcatur/go-antique-storefront/internal/config"
)

// Open builds the KV backend named in cfg. The returned close func releases
// any underlying connection.
func Open(ctx context.Context, cfg config.Config) (KV, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		return NewMemory(), func() {}, nil
	case config.BackendRedis:
		rdb := NewRedisClient(cfg.RedisAddr)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedis(rdb, cfg.CartTTL), func() { _ = rdb.Close() }, nil
	case config.BackendPostgres:
		pool, err := Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		kv := NewPostgres(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres schema: %w", err)
		}
		return kv, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
