package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// SchemeService serves the read-mostly welfare scheme catalog. Listings go
// through a cache because the catalog changes only on admin writes.
type SchemeService struct {
	repo      ports.SchemeRepository
	cache     ports.SchemeCache
	awareness ports.Awareness
	logger    zerolog.Logger
}

func NewSchemeService(repo ports.SchemeRepository, cache ports.SchemeCache, awareness ports.Awareness, logger zerolog.Logger) *SchemeService {
	return &SchemeService{repo: repo, cache: cache, awareness: awareness, logger: logger}
}

func (s *SchemeService) Create(ctx context.Context, input ports.CreateSchemeInput) (*domain.Scheme, error) {
	if input.Name == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", domain.ErrInvalidInput)
	}

	scheme := &domain.Scheme{
		Name:                input.Name,
		Description:         input.Description,
		BeneficiaryCategory: input.BeneficiaryCategory,
		EligibilityCriteria: input.EligibilityCriteria,
		DocumentsRequired:   input.DocumentsRequired,
		Benefits:            input.Benefits,
		ApplicationProcess:  input.ApplicationProcess,
		Department:          input.Department,
		CreatedAt:           time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, scheme)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("scheme cache invalidation failed")
		}
	}

	s.logger.Info().Str("scheme_id", created.ID).Str("name", created.Name).Msg("scheme created")
	return created, nil
}

// List returns the full catalog, cache first. Cache failures degrade to a
// repository read, never to an error.
func (s *SchemeService) List(ctx context.Context, language string) ([]*domain.Scheme, error) {
	schemes, err := s.cachedCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if language != "" && language != "en" && s.awareness != nil {
		translated := make([]*domain.Scheme, len(schemes))
		for i, sc := range schemes {
			t, terr := s.awareness.TranslateScheme(ctx, sc, language)
			if terr != nil {
				s.logger.Warn().Err(terr).Str("scheme_id", sc.ID).Msg("translation failed, serving original")
				t = sc
			}
			translated[i] = t
		}
		return translated, nil
	}

	return schemes, nil
}

func (s *SchemeService) Get(ctx context.Context, id string) (*domain.Scheme, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SchemeService) cachedCatalog(ctx context.Context) ([]*domain.Scheme, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("scheme cache read failed")
		}
	}

	schemes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, schemes); err != nil {
			s.logger.Warn().Err(err).Msg("scheme cache write failed")
		}
	}
	return schemes, nil
}
