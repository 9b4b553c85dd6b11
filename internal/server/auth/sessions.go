package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/common"
)

// SessionManager issues signed, expiring tokens and tracks which of them
// are still live. A token is accepted only if its signature and expiry
// check out and it has not been revoked. Expired entries are dropped
// lazily when they are next presented.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]string
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

type Option func(*SessionManager)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *SessionManager) { m.now = now }
}

func NewSessionManager(secret []byte, validity time.Duration, opts ...Option) *SessionManager {
	m := &SessionManager{
		sessions: make(map[string]string),
		secret:   secret,
		validity: validity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue creates a token for userID and records it as live.
func (m *SessionManager) Issue(userID string) (string, error) {
	token, err := generateToken(userID, m.secret, m.now(), m.validity)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.sessions[token] = userID
	m.mu.Unlock()

	return token, nil
}

// Validate returns the user bound to token. Every failure wraps
// common.ErrorUnauthorized together with the cause.
func (m *SessionManager) Validate(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: missing token", common.ErrorUnauthorized)
	}

	userID, err := parseToken(token, m.secret, m.now)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			m.Revoke(token)
		}
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	m.mu.RLock()
	owner, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrTokenRevoked)
	}
	if owner != userID {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrInvalidToken)
	}

	return userID, nil
}

// Revoke forgets token. Unknown or already revoked tokens are ignored.
func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// RevokeUser drops every live session of userID and returns how many
// there were.
func (m *SessionManager) RevokeUser(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for token, owner := range m.sessions {
		if owner == userID {
			delete(m.sessions, token)
			n++
		}
	}
	return n
}

// Len reports the number of live sessions, including expired ones not yet
// presented again.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
