package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key=\$1 AND \(expires_at IS NULL OR expires_at > now\(\)\)`).
		WithArgs("cart:s1").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`{"v":1,"items":[]}`))
	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key=\$1`).
		WithArgs("cart:s2").
		WillReturnError(pgx.ErrNoRows)

	kv := NewPostgres(mock)
	v, err := kv.Get(context.Background(), "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1,"items":[]}`, v)

	_, err = kv.Get(context.Background(), "cart:s2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSetDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("cart:s1", "payload").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM kv_store WHERE key=\$1`).
		WithArgs("cart:s1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("cart:s1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	kv := NewPostgres(mock)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "cart:s1", "payload"))
	require.NoError(t, kv.Delete(ctx, "cart:s1"))
	ok, err := kv.Exists(ctx, "cart:s1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).
		WillReturnError(errors.New("permission denied"))

	err = NewPostgres(mock).EnsureSchema(context.Background())
	assert.EqualError(t, err, "permission denied")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEnsureSchemaAddsExpiry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`ALTER TABLE kv_store ADD COLUMN IF NOT EXISTS expires_at`).
		WillReturnResult(pgxmock.NewResult("ALTER", 0))

	require.NoError(t, NewPostgres(mock).EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSetNX(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO kv_store\(key, value, expires_at\)`).
		WithArgs("dedup:feed:e1", "o1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO kv_store\(key, value, expires_at\)`).
		WithArgs("dedup:feed:e1", "o1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectExec(`INSERT INTO kv_store\(key, value, expires_at\)`).
		WithArgs("dedup:feed:e2", "o2", pgxmock.AnyArg()).
		WillReturnError(errors.New("conn reset"))

	kv := NewPostgres(mock)
	ctx := context.Background()

	claimed, err := kv.SetNX(ctx, "dedup:feed:e1", "o1", TTLDedup)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = kv.SetNX(ctx, "dedup:feed:e1", "o1", TTLDedup)
	require.NoError(t, err)
	assert.False(t, claimed)

	_, err = kv.SetNX(ctx, "dedup:feed:e2", "o2", TTLDedup)
	assert.EqualError(t, err, "conn reset")

	require.NoError(t, mock.ExpectationsWereMet())
}
