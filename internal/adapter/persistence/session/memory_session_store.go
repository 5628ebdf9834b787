package session

import (
	"context"
	"sync"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"
)

// defaultRetention applies when none is configured. Sessions must outlive the
// checkout widget so a late gateway result still finds them.
const defaultRetention = 24 * time.Hour

type memoryEntry struct {
	session  entities.PaymentSession
	deadline time.Time
}

// memoryLock is dropped from the map once its last holder or waiter leaves.
type memoryLock struct {
	ch   chan struct{}
	refs int
}

// MemorySessionStore keeps payment sessions in process memory. Used when no
// Redis address is configured (single instance, local development).
//
// A session is kept until its ExpiresAt plus the retention window, so replayed
// checkout messages still find the settled session.
type MemorySessionStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	locks     map[string]*memoryLock
	retention time.Duration
	now       func() time.Time
}

var _ interfaces.IPaymentSessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore(retention time.Duration) *MemorySessionStore {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &MemorySessionStore{
		entries:   make(map[string]memoryEntry),
		locks:     make(map[string]*memoryLock),
		retention: retention,
		now:       time.Now,
	}
}

func (s *MemorySessionStore) Save(_ context.Context, ps entities.PaymentSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[ps.ID] = memoryEntry{session: ps, deadline: retentionDeadline(ps, s.now(), s.retention)}
	s.evictLocked()
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (entities.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return entities.PaymentSession{}, nil
	}
	if s.now().After(e.deadline) {
		delete(s.entries, id)
		return entities.PaymentSession{}, nil
	}
	return e.session, nil
}

// Lock blocks until the session's lock is free or ctx is done. ttl is not
// enforced in memory: the holder always releases through the returned func.
func (s *MemorySessionStore) Lock(ctx context.Context, id string, _ time.Duration) (func(), error) {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &memoryLock{ch: make(chan struct{}, 1)}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
	case <-ctx.Done():
		s.release(id, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.ch
			s.release(id, l)
		})
	}, nil
}

func (s *MemorySessionStore) release(id string, l *memoryLock) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.refs--
	if l.refs == 0 && s.locks[id] == l {
		delete(s.locks, id)
	}
}

// evictLocked drops sessions past their retention deadline.
func (s *MemorySessionStore) evictLocked() {
	now := s.now()
	for id, e := range s.entries {
		if now.After(e.deadline) {
			delete(s.entries, id)
		}
	}
}

func retentionDeadline(ps entities.PaymentSession, now time.Time, retention time.Duration) time.Time {
	base := ps.ExpiresAt
	if base.Before(now) {
		base = now
	}
	return base.Add(retention)
}
