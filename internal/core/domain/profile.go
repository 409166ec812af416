package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("eligibility profile not found")

// EligibilityProfile is one self-reported means-testing submission. The
// collection is append-only: corrections are new submissions, and the latest
// record by CreatedAt is authoritative for a given account.
type EligibilityProfile struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	UserID        string    `json:"user_id" bson:"user_id"`
	FullName      string    `json:"full_name" bson:"full_name"`
	Age           int       `json:"age" bson:"age"`
	BankAccountNo string    `json:"bank_account_no" bson:"bank_account_no"`
	AadhaarNo     string    `json:"aadhaar_no" bson:"aadhaar_no"`
	PhoneNumber   string    `json:"phone_number" bson:"phone_number"`
	AnnualIncome  float64   `json:"annual_income" bson:"annual_income"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
