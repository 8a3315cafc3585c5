package ports

import (
	"context"

	"github.com/rentora/admin-cli/internal/domain"
)

// SessionRepository persists the operator session between invocations.
// Load returns domain.ErrNoSession when nothing usable is stored,
// including when the stored data is malformed.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
