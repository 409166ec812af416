package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// profileWhitelist is the set of account fields a citizen may change through
// the profile PATCH path. Role, email, and the password hash are never
// touched here.
var profileWhitelist = map[string]struct{}{
	"full_name":       {},
	"panchayat":       {},
	"ward":            {},
	"occupation":      {},
	"address":         {},
	"bank_account_no": {},
	"ifsc_code":       {},
	"phone_number":    {},
}

// AuthService implements registration, login, and the profile contract.
type AuthService struct {
	repo      ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return nil, fmt.Errorf("%w: email, password and full_name are required", domain.ErrInvalidInput)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleCitizen
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}

	if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	lang := input.LanguagePref
	if lang == "" {
		lang = "en"
	}

	account := &domain.Account{
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         role,
		Panchayat:    input.Panchayat,
		LanguagePref: lang,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, account)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) Me(ctx context.Context, email string) (*domain.Account, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateProfile filters updates down to the whitelist before persisting, so a
// crafted payload cannot escalate role or rewrite credentials.
func (s *AuthService) UpdateProfile(ctx context.Context, email string, updates map[string]interface{}) (*domain.Account, error) {
	fields := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if _, ok := profileWhitelist[k]; ok {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields supplied", domain.ErrInvalidInput)
	}

	if err := s.repo.UpdateProfile(ctx, email, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":  account.Email,
		"role": account.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
