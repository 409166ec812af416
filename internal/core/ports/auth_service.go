package ports

import (
	"context"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Email        string
	Password     string
	FullName     string
	Role         string // defaults to citizen when empty
	Panchayat    string
	LanguagePref string
	PhoneNumber  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Login returns a signed bearer token and the authenticated account.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Me(ctx context.Context, email string) (*domain.Account, error)
	// UpdateProfile applies the whitelisted subset of updates and returns the
	// refreshed account. Non-whitelisted keys (role included) are ignored.
	UpdateProfile(ctx context.Context, email string, updates map[string]interface{}) (*domain.Account, error)
}
