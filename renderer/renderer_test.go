package renderer

import (
	"strings"
	"testing"
	"time"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
)

func testNow() time.Time {
	return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func TestRenderSummary(t *testing.T) {
	sum := &goodmoney.MonthlySummary{
		Month:    goodmoney.MustParseMonth("2026-03"),
		Income:   goodmoney.A(5000),
		Expenses: goodmoney.A(1500),
		Net:      goodmoney.A(3500),
		Transactions: []goodmoney.Transaction{
			{ID: "1", Type: goodmoney.Expense, Amount: goodmoney.A(42.5), Category: "groceries", Date: "2026-03-02T08:15:00Z"},
		},
		Budgets: []goodmoney.BudgetLine{
			{Category: "groceries", Limit: goodmoney.A(600), Spent: goodmoney.A(700)},
		},
	}

	got := RenderSummary(NewSummary(sum, "AUD"))

	for _, want := range []string{
		"# Summary for 2026-03",
		"| Income | A$5,000.00 |",
		"| Net | +A$3,500.00 |",
		"| groceries | A$700.00 | A$600.00 | over |",
		"| 2026-03-02 | expense | groceries | -A$42.50 |", // date truncated, expense negated
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("template error leaked into output:\n%s", got)
	}
}

func TestRenderSummaryZeroNet(t *testing.T) {
	sum := &goodmoney.MonthlySummary{Month: goodmoney.MustParseMonth("2026-03")}
	got := RenderSummary(NewSummary(sum, "AUD"))
	if !strings.Contains(got, "| Net | - |") {
		t.Errorf("zero net should render as a dash:\n%s", got)
	}
}

func TestRenderTransactionsEmpty(t *testing.T) {
	got := RenderTransactions(nil, "AUD")
	if strings.Contains(got, "|") {
		t.Errorf("empty list should render no table:\n%s", got)
	}
}

func TestRenderGoals(t *testing.T) {
	goals := []goodmoney.SavingsGoal{
		{ID: "g1", Name: "House deposit", TargetAmount: goodmoney.A(50000), CurrentAmount: goodmoney.A(12500), TargetDate: "2028-01-01"},
		{ID: "g2", Name: "Stretch", TargetAmount: goodmoney.A(1000), CurrentAmount: goodmoney.A(1500)},
	}
	got := RenderGoals(NewGoals(goals, "AUD"))

	if !strings.Contains(got, "| House deposit | A$12,500.00 | A$50,000.00 | 25% | 2028-01-01 |") {
		t.Errorf("goal row missing:\n%s", got)
	}
	// Over-funded goals show their real progress.
	if !strings.Contains(got, "150%") {
		t.Errorf("over-target progress missing:\n%s", got)
	}
}

func TestRenderGoalsEmpty(t *testing.T) {
	got := RenderGoals(NewGoals(nil, "AUD"))
	if !strings.Contains(got, "No savings goals yet.") {
		t.Errorf("empty goals note missing:\n%s", got)
	}
}

func TestRenderMortgage(t *testing.T) {
	m := &goodmoney.MortgageDetails{
		LoanAmount:    goodmoney.A(500000),
		InterestRate:  6,
		LoanTermYears: 30,
		RepaymentType: goodmoney.InterestOnly,
		Lender:        "First Bank",
	}
	p := goodmoney.NewMortgageProjection(m, testNow())
	got := RenderMortgage(NewMortgage(m, p, "AUD"))

	for _, want := range []string{
		"# Mortgage - First Bank",
		"| Interest rate | 6.00% |",
		"| Monthly repayment | A$2,500.00 |",
		"| Term | 30 years |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("mortgage misses %q:\n%s", want, got)
		}
	}
}

func TestRenderMortgageNil(t *testing.T) {
	got := RenderMortgage(nil)
	if !strings.Contains(got, "No mortgage on record.") {
		t.Errorf("nil mortgage note missing:\n%s", got)
	}
}

func TestRenderRetirement(t *testing.T) {
	d := &goodmoney.SuperDetails{Balance: goodmoney.A(80000), Salary: goodmoney.A(100000), EmployerRate: 11.5, Fund: "SuperFund"}
	p := goodmoney.NewRetirementProjection(d)
	got := RenderRetirement(NewRetirement(d, p, "AUD"))

	for _, want := range []string{
		"# Retirement projection - SuperFund",
		"| Current balance | A$80,000.00 |",
		"| Years to retirement | 37 |",
		"| Annual contribution | A$11,500.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("retirement misses %q:\n%s", want, got)
		}
	}
}

func TestRenderInsurance(t *testing.T) {
	sum := &goodmoney.InsuranceSummary{
		Policies: []goodmoney.InsurancePolicy{
			{ID: "p1", Type: goodmoney.InsuranceCar, Provider: "acme", Premium: goodmoney.A(100), PremiumFrequency: goodmoney.Monthly, RenewalDate: "2026-09-01", CoverAmount: goodmoney.A(20000)},
		},
		AnnualCost: goodmoney.A(1200),
	}
	got := RenderInsurance(NewInsurance(sum, "AUD"))

	if !strings.Contains(got, "| car | acme | A$100.00 | monthly | 2026-09-01 | A$20,000.00 |") {
		t.Errorf("policy row missing:\n%s", got)
	}
	if !strings.Contains(got, "Annualized cost: **A$1,200.00**") {
		t.Errorf("annual cost missing:\n%s", got)
	}
}

func TestRenderInsuranceEmpty(t *testing.T) {
	got := RenderInsurance(NewInsurance(&goodmoney.InsuranceSummary{}, "AUD"))
	if !strings.Contains(got, "No insurance policies on record.") {
		t.Errorf("empty insurance note missing:\n%s", got)
	}
}
