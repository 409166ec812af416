package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// SchemeRepository defines persistence for the welfare scheme catalog.
type SchemeRepository interface {
	Insert(ctx context.Context, scheme *domain.Scheme) (*domain.Scheme, error)
	FindAll(ctx context.Context) ([]*domain.Scheme, error)
	// FindByID resolves a scheme identifier using two strategies in order:
	// exact string _id match first, then 24-hex ObjectID decode. Migration-era
	// documents carry both formats. Returns ErrSchemeNotFound when neither
	// strategy matches.
	FindByID(ctx context.Context, id string) (*domain.Scheme, error)
	Count(ctx context.Context) (int64, error)
}

// SchemeCache is a read-through cache for the catalog listing. A cache
// failure is never fatal; callers fall back to the repository.
type SchemeCache interface {
	Get(ctx context.Context) ([]*domain.Scheme, error)
	Set(ctx context.Context, schemes []*domain.Scheme) error
	Invalidate(ctx context.Context) error
}
