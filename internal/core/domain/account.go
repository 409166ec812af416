package domain

import (
	"errors"
	"time"
)

const (
	RoleCitizen  = "citizen"
	RoleOfficial = "official"
	RoleAdmin    = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one of the recognised account roles.
func ValidRole(role string) bool {
	return role == RoleCitizen || role == RoleOfficial || role == RoleAdmin
}

// Account models a registered identity: a citizen, a reviewing official, or
// an administrator. Profile fields beyond the identity core are optional and
// mutated only through the whitelisted profile-update path.
type Account struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	Panchayat     string    `json:"panchayat,omitempty"`
	LanguagePref  string    `json:"language_pref"`
	Ward          string    `json:"ward,omitempty"`
	Occupation    string    `json:"occupation,omitempty"`
	Address       string    `json:"address,omitempty"`
	BankAccountNo string    `json:"bank_account_no,omitempty"`
	IFSCCode      string    `json:"ifsc_code,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	PasswordHash  string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
