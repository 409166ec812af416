package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// AccountRepository defines persistence for registered identities.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// UpdateProfile applies a field-level $set of the given (already
	// whitelisted) fields to the account identified by email.
	UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) error
	ListByRole(ctx context.Context, role string) ([]*domain.Account, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}
