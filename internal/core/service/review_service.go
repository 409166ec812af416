package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kanthalloor/governance-portal/internal/api/metrics"
	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// applicantStrategy is one step of the ordered applicant resolution chain.
// It reports ok=false to pass resolution on to the next strategy.
type applicantStrategy func(ctx context.Context, app *domain.Application) (domain.ApplicantDetails, bool)

// ReviewService is the back-office workflow: pending listing joined with
// applicant data, one-shot review transitions, the administrative purge, and
// dashboard stats. Role gating happens in the RBAC middleware.
type ReviewService struct {
	applications ports.ApplicationRepository
	accounts     ports.AccountRepository
	profiles     ports.ProfileRepository
	schemes      ports.SchemeRepository
	logger       zerolog.Logger
	strategies   []applicantStrategy
}

func NewReviewService(
	applications ports.ApplicationRepository,
	accounts ports.AccountRepository,
	profiles ports.ProfileRepository,
	schemes ports.SchemeRepository,
	logger zerolog.Logger,
) *ReviewService {
	s := &ReviewService{
		applications: applications,
		accounts:     accounts,
		profiles:     profiles,
		schemes:      schemes,
		logger:       logger,
	}
	// Tiered lookup, freshest data first: profile store, then the account
	// record, then placeholders. First success wins.
	s.strategies = []applicantStrategy{
		s.resolveFromProfile,
		s.resolveFromAccount,
	}
	return s
}

// ListPending returns Pending applications newest-first, each joined with
// live applicant data. A resolution failure degrades that single row to
// placeholders; it never fails the batch.
func (s *ReviewService) ListPending(ctx context.Context) ([]*ports.PendingApplication, error) {
	apps, err := s.applications.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	out := make([]*ports.PendingApplication, 0, len(apps))
	for _, app := range apps {
		out = append(out, &ports.PendingApplication{
			Application:      app,
			ApplicantDetails: s.resolveApplicant(ctx, app),
		})
	}
	return out, nil
}

func (s *ReviewService) resolveApplicant(ctx context.Context, app *domain.Application) domain.ApplicantDetails {
	for _, strategy := range s.strategies {
		if details, ok := strategy(ctx, app); ok {
			return details
		}
	}
	return domain.ApplicantDetails{FullName: "Unknown"}
}

func (s *ReviewService) resolveFromProfile(ctx context.Context, app *domain.Application) (domain.ApplicantDetails, bool) {
	if app.UserID == "" {
		return domain.ApplicantDetails{}, false
	}
	profile, err := s.profiles.FindLatestByUser(ctx, app.UserID)
	if err != nil || profile == nil {
		return domain.ApplicantDetails{}, false
	}
	return domain.ApplicantDetails{
		FullName:      profile.FullName,
		Age:           strconv.Itoa(profile.Age),
		PhoneNumber:   profile.PhoneNumber,
		AadhaarNo:     profile.AadhaarNo,
		BankAccountNo: profile.BankAccountNo,
		AnnualIncome:  strconv.FormatFloat(profile.AnnualIncome, 'f', -1, 64),
	}, true
}

func (s *ReviewService) resolveFromAccount(ctx context.Context, app *domain.Application) (domain.ApplicantDetails, bool) {
	if app.UserID == "" {
		return domain.ApplicantDetails{}, false
	}
	account, err := s.accounts.FindByID(ctx, app.UserID)
	if err != nil || account == nil {
		return domain.ApplicantDetails{}, false
	}
	// Account records carry identity only; eligibility fields stay empty.
	return domain.ApplicantDetails{
		FullName:    account.FullName,
		PhoneNumber: account.PhoneNumber,
	}, true
}

// Verify marks the application Verified and records the reviewer.
func (s *ReviewService) Verify(ctx context.Context, applicationID, reviewer string) (*ports.ReviewResult, error) {
	return s.transition(ctx, applicationID, reviewer, domain.StatusVerified)
}

// Reject marks the application Rejected and records the reviewer.
func (s *ReviewService) Reject(ctx context.Context, applicationID, reviewer string) (*ports.ReviewResult, error) {
	return s.transition(ctx, applicationID, reviewer, domain.StatusRejected)
}

// transition performs a one-shot review decision. Re-applying the status an
// application already holds succeeds without a write; crossing between
// terminal states is rejected.
func (s *ReviewService) transition(ctx context.Context, id, reviewer string, next domain.ApplicationStatus) (*ports.ReviewResult, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if app.Status == next {
		s.logger.Debug().Str("application_id", id).Str("status", string(next)).Msg("review decision replayed")
		return &ports.ReviewResult{ID: id, Status: next}, nil
	}
	if !app.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, app.Status, next)
	}

	if err := s.applications.UpdateStatus(ctx, id, next, reviewer); err != nil {
		return nil, err
	}

	metrics.ApplicationsReviewedTotal.WithLabelValues(string(next)).Inc()
	s.logger.Info().
		Str("application_id", id).
		Str("status", string(next)).
		Str("reviewer", reviewer).
		Msg("application reviewed")

	return &ports.ReviewResult{ID: id, Status: next}, nil
}

// PurgeAll deletes every application regardless of status and returns the
// count. Administrative reset only; the route is kept separate from the
// per-record transitions.
func (s *ReviewService) PurgeAll(ctx context.Context) (int64, error) {
	count, err := s.applications.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge applications: %w", err)
	}

	metrics.ApplicationsPurgedTotal.Add(float64(count))
	s.logger.Warn().Int64("count", count).Msg("application ledger purged")
	return count, nil
}

// Stats aggregates the dashboard counts.
func (s *ReviewService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	citizens, err := s.accounts.CountByRole(ctx, domain.RoleCitizen)
	if err != nil {
		return nil, fmt.Errorf("count citizens: %w", err)
	}
	schemes, err := s.schemes.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count schemes: %w", err)
	}
	pending, err := s.applications.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}

	return &ports.StatsResult{
		TotalCitizens: citizens,
		TotalSchemes:  schemes,
		TotalPending:  pending,
	}, nil
}

// ListCitizens returns all citizen accounts.
func (s *ReviewService) ListCitizens(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.ListByRole(ctx, domain.RoleCitizen)
}
