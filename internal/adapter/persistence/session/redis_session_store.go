package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "payment_session:"
	lockKeyPrefix    = "payment_session_lock:"
	lockRetryDelay   = 50 * time.Millisecond
)

var ErrLockTimeout = errors.New("payment session lock timeout")

// unlockScript deletes the lock only if it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSessionStore shares payment sessions between service instances.
// Values are JSON with a TTL of ExpiresAt plus the retention window.
type RedisSessionStore struct {
	client    redis.UniversalClient
	retention time.Duration
	now       func() time.Time
}

var _ interfaces.IPaymentSessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client redis.UniversalClient, retention time.Duration) *RedisSessionStore {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &RedisSessionStore{client: client, retention: retention, now: time.Now}
}

func (s *RedisSessionStore) Save(ctx context.Context, ps entities.PaymentSession) error {
	data, err := json.Marshal(ps)
	if err != nil {
		return err
	}
	ttl := retentionDeadline(ps, s.now(), s.retention).Sub(s.now())
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.Set(ctx, sessionKeyPrefix+ps.ID, data, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (entities.PaymentSession, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return entities.PaymentSession{}, nil
	}
	if err != nil {
		return entities.PaymentSession{}, err
	}

	var ps entities.PaymentSession
	if err := json.Unmarshal(val, &ps); err != nil {
		return entities.PaymentSession{}, fmt.Errorf("decode payment session %s: %w", id, err)
	}
	return ps, nil
}

// Lock takes a SET NX lock with a token; it expires after ttl if the holder dies.
func (s *RedisSessionStore) Lock(ctx context.Context, id string, ttl time.Duration) (func(), error) {
	key := lockKeyPrefix + id
	token := uuid.NewString()

	for {
		ok, err := s.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		t := time.NewTimer(lockRetryDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
		case <-t.C:
		}
	}

	return func() {
		// Background: the request context may already be cancelled.
		_ = unlockScript.Run(context.Background(), s.client, []string{key}, token).Err()
	}, nil
}
