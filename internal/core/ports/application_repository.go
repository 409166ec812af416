package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// ApplicationRepository defines persistence for the application ledger.
type ApplicationRepository interface {
	Insert(ctx context.Context, app *domain.Application) (string, error)
	// FindByUser returns the account's applications ordered by submission
	// time descending.
	FindByUser(ctx context.Context, userID string) ([]*domain.Application, error)
	// FindPending returns all Pending applications ordered by submission
	// time descending.
	FindPending(ctx context.Context) ([]*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// UpdateStatus sets the status and reviewer on a single application.
	// Returns ErrApplicationNotFound when the id does not resolve.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, reviewer string) error
	// DeleteAll removes every application regardless of status and returns
	// the number deleted. Administrative reset only.
	DeleteAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ApplicationStatus) (int64, error)
}
