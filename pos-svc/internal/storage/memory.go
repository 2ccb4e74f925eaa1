package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/cart"
)

var ErrNotFound = errors.New("not found")

type entry struct {
	payload   []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore keeps carts and sessions in process. Values are stored
// serialized so callers never share a pointer with the store.
type MemoryStore struct {
	mu       sync.Mutex
	carts    map[string]entry
	sessions map[string]entry
	cartTTL  time.Duration
	now      func() time.Time
}

func NewMemoryStore(cartTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		carts:    make(map[string]entry),
		sessions: make(map[string]entry),
		cartTTL:  cartTTL,
		now:      time.Now,
	}
}

func (s *MemoryStore) LoadCart(ctx context.Context, key string) (*cart.Cart, error) {
	s.mu.Lock()
	e, ok := s.carts[key]
	if ok && e.expired(s.now()) {
		delete(s.carts, key)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	var c cart.Cart
	if err := json.Unmarshal(e.payload, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *MemoryStore) SaveCart(ctx context.Context, key string, c *cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	e := entry{payload: payload}
	if s.cartTTL > 0 {
		e.expiresAt = s.now().Add(s.cartTTL)
	}

	s.mu.Lock()
	s.carts[key] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteCart(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.carts, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadSession(ctx context.Context, id string) (*backend.Session, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok && e.expired(s.now()) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	var sess backend.Session
	if err := json.Unmarshal(e.payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *MemoryStore) SaveSession(ctx context.Context, sess *backend.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = entry{payload: payload, expiresAt: sess.ExpiresAt}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// SetClock overrides time.Now, for tests.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.now = now
}
