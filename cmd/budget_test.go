package cmd

import (
	"testing"

	"github.com/google/subcommands"
)

func TestBudgetAddRejectsDuplicateCategory(t *testing.T) {
	home := testHome(t)

	if status := run(t, &budgetCmd{}, "-add", "-category", "groceries", "-limit", "600"); status != subcommands.ExitSuccess {
		t.Fatalf("first add = %v, want success", status)
	}
	// One budget per category: the second add for the same category fails.
	if status := run(t, &budgetCmd{}, "-add", "-category", "groceries", "-limit", "700"); status != subcommands.ExitFailure {
		t.Fatalf("duplicate add = %v, want failure", status)
	}

	budgets := loadLedger(t, home).Budgets()
	if len(budgets) != 1 {
		t.Fatalf("budgets = %d, want 1", len(budgets))
	}
	if !budgets[0].Limit.Equal(mustAmount(t, "600")) {
		t.Errorf("limit = %s, want the original 600", budgets[0].Limit)
	}
}

func TestBudgetAddRejectsNonPositiveLimit(t *testing.T) {
	home := testHome(t)

	for _, limit := range []string{"0", "-5", "nope"} {
		if status := run(t, &budgetCmd{}, "-add", "-category", "groceries", "-limit", limit); status != subcommands.ExitUsageError {
			t.Errorf("add with limit %q = %v, want usage error", limit, status)
		}
	}
	if got := len(loadLedger(t, home).Budgets()); got != 0 {
		t.Errorf("budgets = %d, want 0", got)
	}
}

func TestBudgetDeleteThenReAdd(t *testing.T) {
	home := testHome(t)

	run(t, &budgetCmd{}, "-add", "-category", "groceries", "-limit", "600")
	run(t, &budgetCmd{}, "-delete", "-category", "groceries")
	if status := run(t, &budgetCmd{}, "-add", "-category", "groceries", "-limit", "700"); status != subcommands.ExitSuccess {
		t.Fatalf("re-add after delete = %v, want success", status)
	}

	budgets := loadLedger(t, home).Budgets()
	if len(budgets) != 1 || !budgets[0].Limit.Equal(mustAmount(t, "700")) {
		t.Errorf("budgets = %+v, want one with limit 700", budgets)
	}
}
