package session

import (
	"context"
	"os"
	"testing"
	"time"

	"jobmarket_billing/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server only when REDIS_TEST_ADDR is set.
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisSessionStore(t *testing.T) {
	client := newTestRedis(t)
	store := NewRedisSessionStore(client, time.Minute)
	ctx := context.Background()

	id := uuid.NewString()
	ps := entities.PaymentSession{
		ID:          id,
		FeeIDs:      []string{"f1"},
		AmountMinor: 5000,
		State:       entities.SessionStateAwaitingGateway,
		ExpiresAt:   time.Now().Add(time.Minute),
	}
	require.NoError(t, store.Save(ctx, ps))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateAwaitingGateway, got.State)
	assert.Equal(t, []string{"f1"}, got.FeeIDs)

	ttl, err := client.TTL(ctx, sessionKeyPrefix+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Minute)

	missing, err := store.Get(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	unlock, err := store.Lock(ctx, id, 5*time.Second)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()
	_, err = store.Lock(waitCtx, id, 5*time.Second)
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	again, err := store.Lock(ctx, id, 5*time.Second)
	require.NoError(t, err)
	again()
}
