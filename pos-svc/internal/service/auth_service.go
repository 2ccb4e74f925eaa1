package service

import (
	"context"
	"errors"
	"log"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/storage"
)

type AuthService struct {
	client   AuthBackend
	sessions SessionStore
	carts    CartStore
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(client AuthBackend, sessions SessionStore, carts CartStore, ttl time.Duration) *AuthService {
	return &AuthService{
		client:   client,
		sessions: sessions,
		carts:    carts,
		ttl:      ttl,
		now:      time.Now,
	}
}

var _ AuthInterface = (*AuthService)(nil)

func (s *AuthService) Login(ctx context.Context, form LoginForm) (*backend.Session, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	resp, err := s.client.Login(ctx, form.Email, form.Password)
	if err != nil {
		return nil, err
	}

	sess := backend.NewSession(*resp, s.ttl, s.now())
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	log.Printf("[pos-svc] user %s signed in, session %s", sess.User.Email, sess.ID)
	return sess, nil
}

// Session loads a live session. Expired or revoked sessions are dropped and
// reported as ErrSessionInvalid.
func (s *AuthService) Session(ctx context.Context, id string) (*backend.Session, error) {
	if id == "" {
		return nil, backend.ErrSessionInvalid
	}
	sess, err := s.sessions.LoadSession(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, backend.ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}
	if !sess.Valid(s.now()) {
		s.Forget(ctx, sess)
		return nil, backend.ErrSessionInvalid
	}
	return sess, nil
}

// Logout tells the backend and then drops the session and its POS cart even
// if the backend call failed.
func (s *AuthService) Logout(ctx context.Context, sess *backend.Session) error {
	err := s.client.Logout(ctx, sess)
	s.Forget(ctx, sess)
	if errors.Is(err, backend.ErrSessionInvalid) {
		return nil
	}
	return err
}

func (s *AuthService) Forget(ctx context.Context, sess *backend.Session) {
	if sess == nil {
		return
	}
	if err := s.sessions.DeleteSession(ctx, sess.ID); err != nil {
		log.Printf("[pos-svc] WARNING: failed to delete session %s: %v", sess.ID, err)
	}
	if err := s.carts.DeleteCart(ctx, AdminCart(sess).Key); err != nil {
		log.Printf("[pos-svc] WARNING: failed to delete cart for session %s: %v", sess.ID, err)
	}
}

// SetClock overrides time.Now, for tests.
func (s *AuthService) SetClock(now func() time.Time) {
	s.now = now
}
