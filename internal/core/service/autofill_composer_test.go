package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

func TestAutoFillComposer_Snapshot_FromProfile(t *testing.T) {
	profiles := newStubProfileRepo()
	composer := NewAutoFillComposer(profiles, zerolog.Nop())

	_, _ = profiles.Insert(context.Background(), &domain.EligibilityProfile{
		UserID: "acc-1", FullName: "Ravi Menon", Age: 45,
		PhoneNumber: "9445566778", AadhaarNo: "123412341234",
		BankAccountNo: "SB-200", AnnualIncome: 72500.5,
		CreatedAt: time.Now().UTC(),
	})

	snapshot := composer.Snapshot(context.Background(), &domain.Account{ID: "acc-1", FullName: "Ravi"})
	if snapshot.FullName != "Ravi Menon" {
		t.Fatalf("expected profile name, got %q", snapshot.FullName)
	}
	if snapshot.Age != "45" {
		t.Fatalf("expected stringified age, got %q", snapshot.Age)
	}
	if snapshot.AnnualIncome != "72500.5" {
		t.Fatalf("expected stringified income, got %q", snapshot.AnnualIncome)
	}
}

func TestAutoFillComposer_Snapshot_LatestProfileWins(t *testing.T) {
	profiles := newStubProfileRepo()
	composer := NewAutoFillComposer(profiles, zerolog.Nop())

	base := time.Now().UTC()
	_, _ = profiles.Insert(context.Background(), &domain.EligibilityProfile{
		UserID: "acc-1", FullName: "Old Name", CreatedAt: base,
	})
	_, _ = profiles.Insert(context.Background(), &domain.EligibilityProfile{
		UserID: "acc-1", FullName: "New Name", CreatedAt: base.Add(time.Minute),
	})

	snapshot := composer.Snapshot(context.Background(), &domain.Account{ID: "acc-1"})
	if snapshot.FullName != "New Name" {
		t.Fatalf("expected latest submission to win, got %q", snapshot.FullName)
	}
}

func TestAutoFillComposer_Snapshot_FallbackPlaceholders(t *testing.T) {
	composer := NewAutoFillComposer(newStubProfileRepo(), zerolog.Nop())

	snapshot := composer.Snapshot(context.Background(), &domain.Account{ID: "acc-1", FullName: "Ravi"})
	if snapshot.FullName != "Ravi" {
		t.Fatalf("expected account name fallback, got %q", snapshot.FullName)
	}
	for field, value := range map[string]string{
		"age":             snapshot.Age,
		"phone_number":    snapshot.PhoneNumber,
		"aadhaar_no":      snapshot.AadhaarNo,
		"bank_account_no": snapshot.BankAccountNo,
		"annual_income":   snapshot.AnnualIncome,
	} {
		if value != domain.NotProvided {
			t.Fatalf("expected placeholder for %s, got %q", field, value)
		}
	}
}

func TestAutoFillComposer_Snapshot_StoreErrorFallsBack(t *testing.T) {
	profiles := newStubProfileRepo()
	profiles.findErr = errors.New("store down")
	composer := NewAutoFillComposer(profiles, zerolog.Nop())

	snapshot := composer.Snapshot(context.Background(), &domain.Account{ID: "acc-1", FullName: "Ravi"})
	if snapshot.FullName != "Ravi" || snapshot.AadhaarNo != domain.NotProvided {
		t.Fatalf("store failure must degrade to placeholders, got %+v", snapshot)
	}
}

func TestAutoFillComposer_ComposeMessage(t *testing.T) {
	composer := NewAutoFillComposer(newStubProfileRepo(), zerolog.Nop())

	details := domain.ApplicantDetails{
		FullName: "Ravi Menon", Age: "45", PhoneNumber: "9445566778",
		AadhaarNo: "123412341234", BankAccountNo: "SB-200", AnnualIncome: "72500",
	}
	msg := composer.ComposeMessage(details, &domain.Scheme{Name: "Farm Subsidy"})

	for _, want := range []string{
		"*Application for Farm Subsidy*",
		"Respectful Sir/Madam",
		"Kanthalloor Panchayat",
		"• Name: Ravi Menon",
		"• Age: 45",
		"• Aadhaar: 123412341234",
		"Thank you.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	// Same inputs, same text. The template carries no timestamps or ids.
	if again := composer.ComposeMessage(details, &domain.Scheme{Name: "Farm Subsidy"}); again != msg {
		t.Fatalf("expected deterministic message output")
	}
}
