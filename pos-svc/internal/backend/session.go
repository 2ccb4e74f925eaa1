package backend

import (
	"errors"
	"sync"
	"time"

	"waiterman/pos-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrSessionInvalid = errors.New("session expired or signed out")

// Session is the explicit auth state handed to every authenticated call. It is
// created on login, dies on logout or on the first 401, and is never
// refreshed.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
	Revoked   bool        `json:"revoked"`

	mu sync.Mutex
}

// NewSession wraps a login response. The expiry comes from the token's exp
// claim when present, otherwise from fallbackTTL. The signature is not
// checked here; only the backend can do that.
func NewSession(resp domain.TokenResponse, fallbackTTL time.Duration, now time.Time) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Token:     resp.AccessToken,
		User:      resp.User,
		ExpiresAt: now.Add(fallbackTTL),
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Time
		}
		if s.User.ID == "" {
			if sub, err := claims.GetSubject(); err == nil {
				s.User.ID = sub
			}
		}
		if role, ok := claims["role"].(string); ok && s.User.Role == "" {
			s.User.Role = domain.Role(role)
		}
	}
	return s
}

func (s *Session) Valid(now time.Time) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.Revoked && s.Token != "" && now.Before(s.ExpiresAt)
}

func (s *Session) Invalidate() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.Revoked = true
	s.mu.Unlock()
}

func (s *Session) authHeader() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return "Bearer " + s.Token
}
