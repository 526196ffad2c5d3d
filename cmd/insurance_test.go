package cmd

import (
	"testing"

	"github.com/google/subcommands"
)

func TestInsuranceAddRejectsNonPositivePremium(t *testing.T) {
	home := testHome(t)

	for _, premium := range []string{"0", "-120", "abc"} {
		status := run(t, &insuranceCmd{},
			"-add", "-type", "car", "-provider", "AAMI", "-premium", premium)
		if status != subcommands.ExitUsageError {
			t.Errorf("add with premium %q = %v, want usage error", premium, status)
		}
	}
	if got := len(loadLedger(t, home).Insurance()); got != 0 {
		t.Errorf("policies = %d, want 0", got)
	}
}

func TestInsuranceAddRejectsUnknownType(t *testing.T) {
	home := testHome(t)

	for _, typ := range []string{"", "boat", "CAR"} {
		status := run(t, &insuranceCmd{},
			"-add", "-type", typ, "-provider", "AAMI", "-premium", "120")
		if status != subcommands.ExitUsageError {
			t.Errorf("add with type %q = %v, want usage error", typ, status)
		}
	}
	if got := len(loadLedger(t, home).Insurance()); got != 0 {
		t.Errorf("policies = %d, want 0", got)
	}
}

func TestInsuranceAddRejectsUnknownFrequency(t *testing.T) {
	home := testHome(t)

	status := run(t, &insuranceCmd{},
		"-add", "-type", "car", "-provider", "AAMI", "-premium", "120", "-freq", "daily")
	if status != subcommands.ExitUsageError {
		t.Fatalf("add with freq daily = %v, want usage error", status)
	}
	if got := len(loadLedger(t, home).Insurance()); got != 0 {
		t.Errorf("policies = %d, want 0", got)
	}
}

func TestInsuranceAddStoresValidPolicy(t *testing.T) {
	home := testHome(t)

	status := run(t, &insuranceCmd{},
		"-add", "-type", "home", "-provider", "NRMA", "-premium", "95.50", "-freq", "monthly")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success", status)
	}

	policies := loadLedger(t, home).Insurance()
	if len(policies) != 1 {
		t.Fatalf("policies = %d, want 1", len(policies))
	}
	p := policies[0]
	if p.Provider != "NRMA" || !p.Premium.Equal(mustAmount(t, "95.50")) {
		t.Errorf("stored policy = %+v", p)
	}
}
