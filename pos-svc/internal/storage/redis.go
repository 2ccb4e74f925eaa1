package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/cart"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client  *redis.Client
	CartTTL time.Duration
	now     func() time.Time
}

func NewRedisStore(client *redis.Client, cartTTL time.Duration) *RedisStore {
	return &RedisStore{Client: client, CartTTL: cartTTL, now: time.Now}
}

func (s *RedisStore) CartKey(key string) string {
	return "cart:" + key
}

func (s *RedisStore) SessionKey(id string) string {
	return "session:" + id
}

func (s *RedisStore) LoadCart(ctx context.Context, key string) (*cart.Cart, error) {
	var c cart.Cart
	if err := s.load(ctx, s.CartKey(key), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, key string, c *cart.Cart) error {
	return s.save(ctx, s.CartKey(key), c, s.CartTTL)
}

func (s *RedisStore) DeleteCart(ctx context.Context, key string) error {
	return s.Client.Del(ctx, s.CartKey(key)).Err()
}

func (s *RedisStore) LoadSession(ctx context.Context, id string) (*backend.Session, error) {
	var sess backend.Session
	if err := s.load(ctx, s.SessionKey(id), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SaveSession keeps the session until its token expires. An already expired
// session is not written.
func (s *RedisStore) SaveSession(ctx context.Context, sess *backend.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.DeleteSession(ctx, sess.ID)
	}
	return s.save(ctx, s.SessionKey(sess.ID), sess, ttl)
}

func (s *RedisStore) DeleteSession(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.SessionKey(id)).Err()
}

func (s *RedisStore) load(ctx context.Context, key string, out any) error {
	data, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *RedisStore) save(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, payload, ttl).Err()
}
