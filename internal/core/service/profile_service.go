package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// ProfileService stores eligibility submissions append-only and serves the
// latest-wins read.
type ProfileService struct {
	profiles ports.ProfileRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, accounts ports.AccountRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, accounts: accounts, logger: logger}
}

// Submit records a new eligibility submission for the authenticated citizen.
// Corrections are new submissions; nothing is ever updated in place.
func (s *ProfileService) Submit(ctx context.Context, input ports.SubmitInfoInput) (*domain.EligibilityProfile, error) {
	if input.FullName == "" || input.AadhaarNo == "" {
		return nil, fmt.Errorf("%w: full_name and aadhaar_no are required", domain.ErrInvalidInput)
	}

	account, err := s.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	profile := &domain.EligibilityProfile{
		UserID:        account.ID,
		FullName:      input.FullName,
		Age:           input.Age,
		BankAccountNo: input.BankAccountNo,
		AadhaarNo:     input.AadhaarNo,
		PhoneNumber:   input.PhoneNumber,
		AnnualIncome:  input.AnnualIncome,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.profiles.Insert(ctx, profile)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", account.ID).Msg("failed to store eligibility submission")
		return nil, err
	}
	profile.ID = id

	s.logger.Info().Str("user_id", account.ID).Str("profile_id", id).Msg("eligibility submission stored")
	return profile, nil
}

// Latest resolves the caller's most recent submission. No submission yet is a
// normal state and yields (nil, nil).
func (s *ProfileService) Latest(ctx context.Context, email string) (*domain.EligibilityProfile, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindLatestByUser(ctx, account.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}
