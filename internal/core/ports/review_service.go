package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// PendingApplication is a ledger entry augmented with the applicant view
// resolved at listing time (fresh profile data when available, snapshot or
// placeholders otherwise).
type PendingApplication struct {
	Application      *domain.Application
	ApplicantDetails domain.ApplicantDetails
}

// ReviewResult confirms a review transition.
type ReviewResult struct {
	ID     string
	Status domain.ApplicationStatus
}

// StatsResult aggregates the back-office dashboard counts.
type StatsResult struct {
	TotalCitizens int64
	TotalSchemes  int64
	TotalPending  int64
}

// ReviewService is the role-gated back-office workflow: listing pending
// applications joined with applicant data, and one-shot status transitions.
// Role enforcement happens at the transport boundary (RBAC middleware); the
// service assumes an official or admin caller.
type ReviewService interface {
	ListPending(ctx context.Context) ([]*PendingApplication, error)
	Verify(ctx context.Context, applicationID, reviewer string) (*ReviewResult, error)
	Reject(ctx context.Context, applicationID, reviewer string) (*ReviewResult, error)
	// PurgeAll deletes every application regardless of status and returns
	// the count. Exposed on a distinct endpoint; not a per-record operation.
	PurgeAll(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*StatsResult, error)
	ListCitizens(ctx context.Context) ([]*domain.Account, error)
}
