package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-antique-storefront/internal/config"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, closeFn, err := Open(ctx, config.Config{StoreBackend: config.BackendMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &Memory{}, kv)

	mr := miniredis.RunT(t)
	kv, closeRedis, err := Open(ctx, config.Config{StoreBackend: config.BackendRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer closeRedis()
	assert.IsType(t, &Redis{}, kv)

	_, _, err = Open(ctx, config.Config{StoreBackend: "etcd"})
	assert.EqualError(t, err, `unknown store backend "etcd"`)
}
