package session

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberbook/barberbook-web/internal/models"
)

const (
	CookieName = "barberbook_session"

	// Sessions outlive browser restarts until explicit logout, so the
	// cookie gets a long fixed lifetime rather than a session scope.
	cookieMaxAge = 365 * 24 * 60 * 60
)

var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind the cookie: the backend
// bearer token plus the cached profile. Lifecycle is init (loaded from
// the store) → active → cleared (logout).
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Store persists sessions by id. No expiry: a token is treated as
// valid until the backend rejects it.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Manager composes the store with the signed-cookie codec.
type Manager struct {
	store  Store
	codec  *Codec
	secure bool
}

func NewManager(store Store, codec *Codec, secure bool) *Manager {
	return &Manager{store: store, codec: codec, secure: secure}
}

// Create persists a fresh session and sets the signed cookie.
func (m *Manager) Create(c *gin.Context, token string, user models.User) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}
	if err := m.store.Save(c.Request.Context(), s); err != nil {
		return nil, err
	}

	signed, err := m.codec.Issue(s.ID)
	if err != nil {
		return nil, err
	}
	c.SetCookie(CookieName, signed, cookieMaxAge, "/", "", m.secure, true)
	return s, nil
}

// Current resolves the request's session, or reports none.
func (m *Manager) Current(c *gin.Context) (*Session, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil, false
	}
	id, err := m.codec.Verify(raw)
	if err != nil {
		return nil, false
	}
	s, err := m.store.Get(c.Request.Context(), id)
	if err != nil {
		return nil, false
	}
	return s, true
}

// Clear drops local state unconditionally: the store delete is best
// effort and the cookie is always expired, even when the remote logout
// already failed upstream.
func (m *Manager) Clear(c *gin.Context) {
	if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
		if id, err := m.codec.Verify(raw); err == nil {
			_ = m.store.Delete(c.Request.Context(), id)
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}
