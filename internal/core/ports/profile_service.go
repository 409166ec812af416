package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// SubmitInfoInput is a citizen's self-reported means-testing data. The owning
// account is always resolved from the authenticated identity, never from the
// request body.
type SubmitInfoInput struct {
	Email         string
	FullName      string
	Age           int
	BankAccountNo string
	AadhaarNo     string
	PhoneNumber   string
	AnnualIncome  float64
}

// ProfileService handles eligibility submissions and latest-wins reads.
type ProfileService interface {
	Submit(ctx context.Context, input SubmitInfoInput) (*domain.EligibilityProfile, error)
	// Latest returns the caller's most recent submission. A missing profile
	// is reported as (nil, nil), not an error: the portal renders an empty
	// form in that case.
	Latest(ctx context.Context, email string) (*domain.EligibilityProfile, error)
}
