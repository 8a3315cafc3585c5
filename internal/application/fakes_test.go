package application

import (
	"context"
	"sync"
	"time"

	"github.com/rentora/admin-cli/internal/domain"
)

type fakeSessionRepo struct {
	mu      sync.Mutex
	session domain.Session
	stored  bool

	loadErr  error
	saveErr  error
	clearErr error
}

func (r *fakeSessionRepo) Load(_ context.Context) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loadErr != nil {
		return domain.Session{}, r.loadErr
	}
	if !r.stored {
		return domain.Session{}, domain.ErrNoSession
	}
	return r.session, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}
	r.session = session
	r.stored = true
	return nil
}

func (r *fakeSessionRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clearErr != nil {
		return r.clearErr
	}
	r.session = domain.Session{}
	r.stored = false
	return nil
}

type fakeGateway struct {
	mu          sync.Mutex
	listCalls   int
	actionCalls int

	listFn   func(key domain.CollectionKey) ([]domain.Record, error)
	actionFn func(key domain.CollectionKey, id string, action domain.ModerationAction) (domain.ActionResult, error)
}

func (g *fakeGateway) Login(_ context.Context, _, _ string) (string, domain.Profile, error) {
	return "token", domain.Profile{DisplayName: "Test Admin", Role: domain.RoleAdmin}, nil
}

func (g *fakeGateway) ListRecords(_ context.Context, _ string, key domain.CollectionKey) ([]domain.Record, error) {
	g.mu.Lock()
	g.listCalls++
	g.mu.Unlock()

	return g.listFn(key)
}

func (g *fakeGateway) ApplyAction(_ context.Context, _ string, key domain.CollectionKey, id string, action domain.ModerationAction) (domain.ActionResult, error) {
	g.mu.Lock()
	g.actionCalls++
	g.mu.Unlock()

	return g.actionFn(key, id, action)
}

func (g *fakeGateway) calls() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.listCalls, g.actionCalls
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func authenticatedStore(repo *fakeSessionRepo) *SessionStore {
	store := NewSessionStore(repo, fixedClock{now: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)})
	_ = store.Establish(context.Background(), "token-1", domain.Profile{DisplayName: "Ops", Role: domain.RoleAdmin})
	return store
}
