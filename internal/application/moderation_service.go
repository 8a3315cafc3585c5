package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rentora/admin-cli/internal/domain"
	"github.com/rentora/admin-cli/internal/ports"
)

type pendingKey struct {
	collection domain.CollectionKey
	id         string
}

// ModerationService executes moderation actions and reconciles their
// server-confirmed results into the caches. At most one mutation per
// (collection, id) is in flight; a second request for the same record
// is rejected with domain.ErrMutationInFlight before any network call.
type ModerationService struct {
	sessions *SessionStore
	gateway  ports.ModerationGateway
	caches   *CacheSet

	mu      sync.Mutex
	pending map[pendingKey]struct{}
}

// ModerationOutcome reports what the server confirmed and whether the
// result still applied to the cache. Applied is false when the record
// vanished before the response landed or when the result was computed
// against a snapshot superseded by later refreshes.
type ModerationOutcome struct {
	ID      string
	Action  domain.ModerationAction
	Status  domain.ModerationStatus
	Removed bool
	Applied bool
	Message string
}

func NewModerationService(sessions *SessionStore, gateway ports.ModerationGateway, caches *CacheSet) *ModerationService {
	if caches == nil {
		caches = NewCacheSet()
	}

	return &ModerationService{
		sessions: sessions,
		gateway:  gateway,
		caches:   caches,
		pending:  map[pendingKey]struct{}{},
	}
}

func (s *ModerationService) Apply(ctx context.Context, key domain.CollectionKey, id string, action domain.ModerationAction) (ModerationOutcome, error) {
	if !key.Valid() {
		return ModerationOutcome{}, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, key)
	}
	if !action.Valid() {
		return ModerationOutcome{}, fmt.Errorf("unknown moderation action %q", action)
	}
	if id == "" {
		return ModerationOutcome{}, errors.New("record id is required")
	}

	session := s.sessions.Current()
	if !session.Authenticated() {
		return ModerationOutcome{}, domain.ErrNoSession
	}

	pending := pendingKey{collection: key, id: id}
	if !s.acquire(pending) {
		return ModerationOutcome{}, fmt.Errorf("%s %s: %w", key, id, domain.ErrMutationInFlight)
	}
	defer s.release(pending)

	cache := s.caches.For(key)
	observedSeq := cache.RefreshSeq()

	result, err := s.gateway.ApplyAction(ctx, session.Token, key, id, action)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			_ = s.sessions.Clear(ctx)
		}
		return ModerationOutcome{}, fmt.Errorf("apply %s to %s %s: %w", action, key, id, err)
	}

	outcome := ModerationOutcome{
		ID:      id,
		Action:  action,
		Status:  result.Status,
		Removed: result.Removed,
		Message: result.Message,
	}

	switch {
	case result.Removed:
		outcome.Applied = cache.Remove(id, observedSeq)
	case result.Status != "":
		outcome.Applied = cache.PatchStatus(id, result.Status, observedSeq)
	}

	return outcome, nil
}

func (s *ModerationService) acquire(key pendingKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.pending[key]; busy {
		return false
	}
	s.pending[key] = struct{}{}

	return true
}

func (s *ModerationService) release(key pendingKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, key)
}
