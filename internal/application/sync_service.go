package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentora/admin-cli/internal/domain"
	"github.com/rentora/admin-cli/internal/ports"
)

// SyncService replaces collection caches with full server snapshots.
// Concurrent refreshes of the same collection are not deduplicated; the
// last snapshot to arrive wins, which is sound because every refresh is
// a total snapshot rather than a delta.
type SyncService struct {
	sessions *SessionStore
	gateway  ports.ModerationGateway
	caches   *CacheSet
}

func NewSyncService(sessions *SessionStore, gateway ports.ModerationGateway, caches *CacheSet) *SyncService {
	if caches == nil {
		caches = NewCacheSet()
	}

	return &SyncService{sessions: sessions, gateway: gateway, caches: caches}
}

// Refresh fetches the collection and installs it. A session-expired
// response clears the session; any other failure leaves the cache
// untouched. A missing token short-circuits before any network call.
func (s *SyncService) Refresh(ctx context.Context, key domain.CollectionKey) (CacheView, error) {
	if !key.Valid() {
		return CacheView{}, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, key)
	}

	session := s.sessions.Current()
	if !session.Authenticated() {
		return CacheView{}, domain.ErrNoSession
	}

	records, err := s.gateway.ListRecords(ctx, session.Token, key)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			_ = s.sessions.Clear(ctx)
		}
		return CacheView{}, fmt.Errorf("refresh %s: %w", key, err)
	}

	cache := s.caches.For(key)
	cache.ReplaceAll(records)

	return cache.Snapshot(), nil
}

// View returns the current cache snapshot without touching the network.
func (s *SyncService) View(key domain.CollectionKey) CacheView {
	return s.caches.For(key).Snapshot()
}
