package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rentora/admin-cli/internal/domain"
	"github.com/rentora/admin-cli/internal/ports"
)

// SessionStore owns the authenticated session for the process. It is
// hydrated once from the repository and afterwards mutated only by
// Establish and Clear.
type SessionStore struct {
	repo  ports.SessionRepository
	clock ports.Clock

	mu      sync.RWMutex
	session domain.Session
}

func NewSessionStore(repo ports.SessionRepository, clock ports.Clock) *SessionStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionStore{repo: repo, clock: clock}
}

// Hydrate loads the persisted session. Malformed or missing data
// degrades to "no session"; startup never fails on it.
func (s *SessionStore) Hydrate(ctx context.Context) {
	session, err := s.repo.Load(ctx)
	if err != nil || !session.Authenticated() {
		return
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

func (s *SessionStore) Establish(ctx context.Context, token string, profile domain.Profile) error {
	if token == "" {
		return errors.New("session token is required")
	}
	if profile.DisplayName == "" {
		return errors.New("session profile is required")
	}

	session := domain.Session{
		Token:         token,
		Profile:       profile,
		EstablishedAt: s.clock.Now(),
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return nil
}

// Clear drops the session from memory and persistence. It is
// idempotent; the in-memory session is gone even when removing the
// persisted copy fails.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	return nil
}

func (s *SessionStore) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}
