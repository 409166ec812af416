package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanthalloor/governance-portal/internal/api/metrics"
	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// ApplicationService implements the citizen-facing side of the application
// ledger: submission with an auto-filled snapshot, own-application listing,
// and outreach message generation.
type ApplicationService struct {
	applications ports.ApplicationRepository
	accounts     ports.AccountRepository
	schemes      ports.SchemeRepository
	composer     ports.Composer
	logger       zerolog.Logger
}

func NewApplicationService(
	applications ports.ApplicationRepository,
	accounts ports.AccountRepository,
	schemes ports.SchemeRepository,
	composer ports.Composer,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		accounts:     accounts,
		schemes:      schemes,
		composer:     composer,
		logger:       logger,
	}
}

// Submit files a new application. Status is forced to Pending and the
// submission time is stamped here regardless of anything the caller supplied.
// Either the full record including its snapshot is persisted, or nothing is.
func (s *ApplicationService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*ports.SubmitResult, error) {
	if input.SchemeID == "" {
		return nil, fmt.Errorf("%w: scheme_id is required", domain.ErrInvalidInput)
	}

	account, err := s.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	scheme, err := s.schemes.FindByID(ctx, input.SchemeID)
	if err != nil {
		return nil, err
	}

	snapshot := s.composer.Snapshot(ctx, account)

	details := make(map[string]interface{}, len(input.Details)+1)
	for k, v := range input.Details {
		details[k] = v
	}
	details[domain.DetailsKeyApplicant] = snapshot

	app := &domain.Application{
		SchemeID:       scheme.ID,
		SchemeName:     scheme.Name,
		ApplicantName:  snapshot.FullName,
		UserID:         account.ID,
		Status:         domain.StatusPending,
		SubmissionDate: time.Now().UTC(),
		Details:        details,
	}

	id, err := s.applications.Insert(ctx, app)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", account.ID).Str("scheme_id", scheme.ID).Msg("failed to persist application")
		return nil, err
	}

	metrics.ApplicationsSubmittedTotal.WithLabelValues(scheme.Name).Inc()
	s.logger.Info().
		Str("application_id", id).
		Str("user_id", account.ID).
		Str("scheme", scheme.Name).
		Str("applicant", snapshot.FullName).
		Msg("application submitted")

	return &ports.SubmitResult{
		ID:             id,
		SchemeName:     scheme.Name,
		Status:         app.Status,
		SubmissionDate: app.SubmissionDate,
	}, nil
}

// ListMine returns the caller's applications, newest submission first.
func (s *ApplicationService) ListMine(ctx context.Context, email string) ([]*domain.Application, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.applications.FindByUser(ctx, account.ID)
}

// GenerateMessage composes the outreach text for the scheme from the caller's
// latest eligibility data. Read-only; nothing is persisted.
func (s *ApplicationService) GenerateMessage(ctx context.Context, email, schemeID string) (*ports.OutreachMessage, error) {
	if schemeID == "" {
		return nil, fmt.Errorf("%w: scheme_id is required", domain.ErrInvalidInput)
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	scheme, err := s.schemes.FindByID(ctx, schemeID)
	if err != nil {
		return nil, err
	}

	snapshot := s.composer.Snapshot(ctx, account)
	return &ports.OutreachMessage{
		Message: s.composer.ComposeMessage(snapshot, scheme),
		Phone:   panchayatOfficePhone,
	}, nil
}
