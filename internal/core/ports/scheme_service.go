package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// CreateSchemeInput carries the reference data for a new welfare scheme.
type CreateSchemeInput struct {
	Name                string
	Description         string
	BeneficiaryCategory []string
	EligibilityCriteria string
	DocumentsRequired   []string
	Benefits            string
	ApplicationProcess  string
	Department          string
}

// SchemeService exposes the read-mostly scheme catalog.
type SchemeService interface {
	Create(ctx context.Context, input CreateSchemeInput) (*domain.Scheme, error)
	// List returns the full catalog, translated when language is not "en".
	List(ctx context.Context, language string) ([]*domain.Scheme, error)
	Get(ctx context.Context, id string) (*domain.Scheme, error)
}

// Awareness adapts government text for citizens: scheme translation and
// plain-language simplification. The identity implementation is used until a
// real language backend is wired; nothing in the core depends on more.
type Awareness interface {
	TranslateScheme(ctx context.Context, scheme *domain.Scheme, targetLanguage string) (*domain.Scheme, error)
	Simplify(ctx context.Context, text string) (string, error)
}
