package goodmoney

import (
	"math"
	"testing"
	"time"

	"github.com/laurenceescalante81/Good-Money-AI-sub001/kv"
)

func TestMortgageProjectionAnnuity(t *testing.T) {
	m := &MortgageDetails{
		LoanAmount:    A(500000),
		InterestRate:  6,
		LoanTermYears: 30,
		RepaymentType: PrincipalInterest,
	}
	p := NewMortgageProjection(m, testNow)

	// Standard annuity figure for 500k at 6% over 30 years.
	if math.Abs(p.MonthlyRepayment-2997.75) > 0.05 {
		t.Errorf("monthly = %.2f, want ~2997.75", p.MonthlyRepayment)
	}
	if math.Abs(p.TotalPayment-p.MonthlyRepayment*360) > 0.01 {
		t.Errorf("total payment = %.2f, want monthly*360", p.TotalPayment)
	}
	if math.Abs(p.TotalInterest-(p.TotalPayment-500000)) > 0.01 {
		t.Errorf("total interest = %.2f, want total-principal", p.TotalInterest)
	}
}

func TestMortgageProjectionInterestOnly(t *testing.T) {
	m := &MortgageDetails{
		LoanAmount:    A(500000),
		InterestRate:  6,
		LoanTermYears: 30,
		RepaymentType: InterestOnly,
	}
	p := NewMortgageProjection(m, testNow)
	if math.Abs(p.MonthlyRepayment-2500) > 1e-9 {
		t.Errorf("interest-only monthly = %.2f, want 2500", p.MonthlyRepayment)
	}
}

func TestMortgageProjectionZeroRate(t *testing.T) {
	m := &MortgageDetails{
		LoanAmount:    A(360000),
		InterestRate:  0,
		LoanTermYears: 30,
		RepaymentType: PrincipalInterest,
	}
	p := NewMortgageProjection(m, testNow)
	if math.Abs(p.MonthlyRepayment-1000) > 1e-9 {
		t.Errorf("zero-rate monthly = %.2f, want 1000", p.MonthlyRepayment)
	}
	if p.TotalInterest != 0 {
		t.Errorf("zero-rate total interest = %.2f, want 0", p.TotalInterest)
	}
}

func TestMortgageProjectionExtraRepayment(t *testing.T) {
	base := NewMortgageProjection(&MortgageDetails{
		LoanAmount: A(500000), InterestRate: 6, LoanTermYears: 30, RepaymentType: PrincipalInterest,
	}, testNow)
	extra := NewMortgageProjection(&MortgageDetails{
		LoanAmount: A(500000), InterestRate: 6, LoanTermYears: 30, RepaymentType: PrincipalInterest,
		ExtraRepayment: A(200),
	}, testNow)

	if math.Abs(extra.MonthlyRepayment-(base.MonthlyRepayment+200)) > 1e-9 {
		t.Errorf("extra monthly = %.2f, want base+200", extra.MonthlyRepayment)
	}
	// The schedule length is unchanged: totals still cover the original term.
	if math.Abs(extra.TotalPayment-extra.MonthlyRepayment*360) > 0.01 {
		t.Errorf("extra total payment = %.2f, want monthly*360", extra.TotalPayment)
	}
}

func TestMortgageProjectionElapsed(t *testing.T) {
	m := &MortgageDetails{
		LoanAmount:    A(500000),
		InterestRate:  6,
		LoanTermYears: 30,
		RepaymentType: PrincipalInterest,
		StartDate:     "2024-03-30",
	}
	// Whole calendar months: the day of month is ignored.
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := NewMortgageProjection(m, now)
	if p.MonthsElapsed != 24 {
		t.Errorf("months elapsed = %d, want 24", p.MonthsElapsed)
	}
	if math.Abs(p.YearsRemaining-28) > 1e-9 {
		t.Errorf("years remaining = %.2f, want 28", p.YearsRemaining)
	}
}

func TestMortgageProjectionBadStartDate(t *testing.T) {
	m := &MortgageDetails{
		LoanAmount: A(100000), InterestRate: 5, LoanTermYears: 10, RepaymentType: PrincipalInterest,
		StartDate: "soon",
	}
	p := NewMortgageProjection(m, testNow)
	if p.MonthsElapsed != 0 {
		t.Errorf("unparseable start date should elapse 0 months, got %d", p.MonthsElapsed)
	}
	if math.Abs(p.YearsRemaining-10) > 1e-9 {
		t.Errorf("years remaining = %.2f, want 10", p.YearsRemaining)
	}
}

func TestMortgageProjectionNil(t *testing.T) {
	if p := NewMortgageProjection(nil, testNow); p != (MortgageProjection{}) {
		t.Errorf("nil mortgage should yield the zero projection, got %+v", p)
	}
}

func TestStoreMortgageProjection(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	if p := s.MortgageProjection(); p != (MortgageProjection{}) {
		t.Errorf("no mortgage should yield the zero projection, got %+v", p)
	}
	s.SetMortgage(MortgageDetails{LoanAmount: A(500000), InterestRate: 6, LoanTermYears: 30, RepaymentType: InterestOnly})
	if p := s.MortgageProjection(); math.Abs(p.MonthlyRepayment-2500) > 1e-9 {
		t.Errorf("monthly = %.2f, want 2500", p.MonthlyRepayment)
	}
}
