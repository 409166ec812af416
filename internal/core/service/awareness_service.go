package service

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// IdentityAwareness is the placeholder language adapter: translation returns
// the scheme unchanged and simplification returns the text unchanged. English
// requests short-circuit by contract; other languages pass through until a
// real language backend replaces this implementation.
type IdentityAwareness struct{}

func NewIdentityAwareness() *IdentityAwareness {
	return &IdentityAwareness{}
}

func (a *IdentityAwareness) TranslateScheme(_ context.Context, scheme *domain.Scheme, targetLanguage string) (*domain.Scheme, error) {
	if targetLanguage == "en" {
		return scheme, nil
	}
	clone := *scheme
	return &clone, nil
}

func (a *IdentityAwareness) Simplify(_ context.Context, text string) (string, error) {
	return text, nil
}
