package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the review state of a scheme application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusVerified ApplicationStatus = "Verified"
	StatusRejected ApplicationStatus = "Rejected"
)

// validTransitions defines the allowed review transitions. Verified and
// Rejected are terminal; re-review requires a new application.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending: {StatusVerified, StatusRejected},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrApplicationNotFound = errors.New("application not found")
var ErrSchemeNotFound = errors.New("scheme not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidInput = errors.New("invalid input")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DetailsKeyApplicant is the key under which the applicant snapshot is stored
// in Application.Details.
const DetailsKeyApplicant = "applicant_details"

// ApplicantDetails is the denormalized snapshot of a citizen's eligibility
// data embedded in an application at submission time. All fields are always
// populated; missing data is carried as the NotProvided placeholder so the
// record stays legible even when the profile is later changed or removed.
type ApplicantDetails struct {
	FullName      string `json:"full_name" bson:"full_name"`
	Age           string `json:"age" bson:"age"`
	PhoneNumber   string `json:"phone_number" bson:"phone_number"`
	AadhaarNo     string `json:"aadhaar_no" bson:"aadhaar_no"`
	BankAccountNo string `json:"bank_account_no" bson:"bank_account_no"`
	AnnualIncome  string `json:"annual_income" bson:"annual_income"`
}

// NotProvided marks snapshot fields for which the citizen never submitted data.
const NotProvided = "Not Provided"

// Application is the core aggregate: a citizen's request to be considered
// for a scheme, tracked through a one-shot review transition. It references
// the scheme and the submitting account by id but embeds the applicant
// snapshot, so the scheme name and details survive catalog or profile edits.
type Application struct {
	ID             string                 `json:"id" bson:"_id,omitempty"`
	SchemeID       string                 `json:"scheme_id" bson:"scheme_id"`
	SchemeName     string                 `json:"scheme_name" bson:"scheme_name"`
	ApplicantName  string                 `json:"applicant_name" bson:"applicant_name"`
	UserID         string                 `json:"user_id" bson:"user_id"`
	Status         ApplicationStatus      `json:"status" bson:"status"`
	SubmissionDate time.Time              `json:"submission_date" bson:"submission_date"`
	Details        map[string]interface{} `json:"details" bson:"details"`
	ReviewedBy     string                 `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
}
