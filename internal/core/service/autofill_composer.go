package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// panchayatOfficePhone is the contact number outreach messages are addressed
// to. A single office serves the portal's locality.
const panchayatOfficePhone = "919876543210"

// AutoFillComposer builds the applicant snapshot and the outreach message
// from the eligibility profile store. It performs no writes of its own.
type AutoFillComposer struct {
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewAutoFillComposer(profiles ports.ProfileRepository, logger zerolog.Logger) *AutoFillComposer {
	return &AutoFillComposer{profiles: profiles, logger: logger}
}

// Snapshot resolves the account's latest eligibility profile into the fixed
// snapshot shape. Without a profile, the account's full name is used and the
// remaining fields carry the NotProvided placeholder, so every key is always
// present.
func (c *AutoFillComposer) Snapshot(ctx context.Context, account *domain.Account) domain.ApplicantDetails {
	profile, err := c.profiles.FindLatestByUser(ctx, account.ID)
	if err != nil || profile == nil {
		if err != nil {
			c.logger.Debug().Err(err).Str("user_id", account.ID).Msg("no eligibility profile, using account fallback")
		}
		return domain.ApplicantDetails{
			FullName:      account.FullName,
			Age:           domain.NotProvided,
			PhoneNumber:   domain.NotProvided,
			AadhaarNo:     domain.NotProvided,
			BankAccountNo: domain.NotProvided,
			AnnualIncome:  domain.NotProvided,
		}
	}

	return domain.ApplicantDetails{
		FullName:      profile.FullName,
		Age:           strconv.Itoa(profile.Age),
		PhoneNumber:   profile.PhoneNumber,
		AadhaarNo:     profile.AadhaarNo,
		BankAccountNo: profile.BankAccountNo,
		AnnualIncome:  strconv.FormatFloat(profile.AnnualIncome, 'f', -1, 64),
	}
}

// ComposeMessage renders the application text sent to the panchayat office.
// Deterministic template only; no generation call is involved.
func (c *AutoFillComposer) ComposeMessage(details domain.ApplicantDetails, scheme *domain.Scheme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Application for %s*\n\n", scheme.Name)
	b.WriteString("Respectful Sir/Madam,\n\n")
	fmt.Fprintf(&b, "I am %s, a resident of Kanthalloor Panchayat. I would like to apply for the *%s*.\n\n", details.FullName, scheme.Name)
	b.WriteString("*My Details:*\n")
	fmt.Fprintf(&b, "• Name: %s\n", details.FullName)
	fmt.Fprintf(&b, "• Age: %s\n", details.Age)
	fmt.Fprintf(&b, "• Phone: %s\n", details.PhoneNumber)
	fmt.Fprintf(&b, "• Aadhaar: %s\n", details.AadhaarNo)
	fmt.Fprintf(&b, "• Bank Acc: %s\n\n", details.BankAccountNo)
	b.WriteString("I have attached necessary documents visually in this chat or will provide them physically. Please guide me on the next steps.\n\nThank you.")
	return b.String()
}
