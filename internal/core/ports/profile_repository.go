package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// ProfileRepository persists eligibility submissions. The collection is
// append-only; there is no update or delete.
type ProfileRepository interface {
	Insert(ctx context.Context, profile *domain.EligibilityProfile) (string, error)
	// FindLatestByUser returns the most recent submission for the account,
	// ordered by creation time descending, or ErrProfileNotFound.
	FindLatestByUser(ctx context.Context, userID string) (*domain.EligibilityProfile, error)
}
