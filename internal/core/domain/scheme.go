package domain

import "time"

// Scheme is a static welfare-program reference record. Created by an admin,
// read by everyone, never owned by a citizen.
type Scheme struct {
	ID                  string    `json:"id" bson:"_id,omitempty"`
	Name                string    `json:"name" bson:"name"`
	Description         string    `json:"description" bson:"description"`
	BeneficiaryCategory []string  `json:"beneficiary_category" bson:"beneficiary_category"`
	EligibilityCriteria string    `json:"eligibility_criteria" bson:"eligibility_criteria"`
	DocumentsRequired   []string  `json:"documents_required" bson:"documents_required"`
	Benefits            string    `json:"benefits" bson:"benefits"`
	ApplicationProcess  string    `json:"application_process" bson:"application_process"`
	Department          string    `json:"department,omitempty" bson:"department,omitempty"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
}
