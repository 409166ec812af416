package ports

import (
	"context"
	"time"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// SubmitApplicationInput carries a citizen's application to a scheme. Email
// is resolved from the authenticated identity. Any status or timestamp the
// caller supplies is discarded: status is forced to Pending and submission
// time is stamped server-side.
type SubmitApplicationInput struct {
	Email    string
	SchemeID string
	// Details carries optional scheme-specific fields. The composer snapshot
	// is attached under the applicant_details key, overwriting any
	// caller-supplied value.
	Details map[string]interface{}
}

// SubmitResult is returned after a successful submission.
type SubmitResult struct {
	ID             string
	SchemeName     string
	Status         domain.ApplicationStatus
	SubmissionDate time.Time
}

// ApplicationService defines the citizen-facing side of the ledger.
type ApplicationService interface {
	Submit(ctx context.Context, input SubmitApplicationInput) (*SubmitResult, error)
	ListMine(ctx context.Context, email string) ([]*domain.Application, error)
	// GenerateMessage composes the deterministic outreach message for the
	// scheme from the caller's latest eligibility data.
	GenerateMessage(ctx context.Context, email, schemeID string) (*OutreachMessage, error)
}

// OutreachMessage is the ready-to-send application text plus the office
// contact number it should be sent to.
type OutreachMessage struct {
	Message string
	Phone   string
}

// Composer builds the applicant snapshot embedded in every application and
// the human-readable outreach text. Pure read + compose; it never writes.
type Composer interface {
	// Snapshot resolves the account's latest eligibility profile into the
	// fixed-shape applicant details, falling back to account fields with
	// NotProvided placeholders when no profile exists.
	Snapshot(ctx context.Context, account *domain.Account) domain.ApplicantDetails
	// ComposeMessage renders the deterministic application text for the
	// scheme from an already-built snapshot.
	ComposeMessage(details domain.ApplicantDetails, scheme *domain.Scheme) string
}
