package ports

import (
	"context"

	"github.com/rentora/admin-cli/internal/domain"
)

// ModerationGateway is the remote service boundary. Implementations
// must translate any 401-class response into domain.ErrSessionExpired.
type ModerationGateway interface {
	Login(ctx context.Context, email, password string) (string, domain.Profile, error)
	ListRecords(ctx context.Context, token string, key domain.CollectionKey) ([]domain.Record, error)
	ApplyAction(ctx context.Context, token string, key domain.CollectionKey, id string, action domain.ModerationAction) (domain.ActionResult, error)
}
