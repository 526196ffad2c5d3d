package goodmoney

import (
	"math"
	"testing"

	"github.com/laurenceescalante81/Good-Money-AI-sub001/kv"
)

func TestRetirementProjection(t *testing.T) {
	d := &SuperDetails{
		Balance:      A(80000),
		Salary:       A(100000),
		EmployerRate: 11.5,
	}
	p := NewRetirementProjection(d)

	if p.YearsToRetirement != 37 {
		t.Errorf("years to retirement = %d, want 37", p.YearsToRetirement)
	}
	if math.Abs(p.AnnualContribution-11500) > 1e-9 {
		t.Errorf("annual contribution = %.2f, want 11500", p.AnnualContribution)
	}

	// Closed form of the yearly loop: contributions are added before growth,
	// so each one compounds at least once.
	g := 1.07
	gn := math.Pow(g, 37)
	want := 80000*gn + 11500*g*(gn-1)/(g-1)
	if math.Abs(p.AtRetirement-want) > want*1e-9 {
		t.Errorf("at retirement = %.2f, want %.2f", p.AtRetirement, want)
	}
	if math.Abs(p.MonthlyInRetirement-want*0.04/12) > 1e-6 {
		t.Errorf("monthly in retirement = %.2f, want %.2f", p.MonthlyInRetirement, want*0.04/12)
	}
}

func TestRetirementProjectionZeroInputs(t *testing.T) {
	p := NewRetirementProjection(&SuperDetails{})
	if p.AtRetirement != 0 || p.MonthlyInRetirement != 0 {
		t.Errorf("zero record should project zero, got %+v", p)
	}
	if p.YearsToRetirement != 37 {
		t.Errorf("years to retirement = %d, want 37", p.YearsToRetirement)
	}
}

func TestRetirementProjectionNil(t *testing.T) {
	if p := NewRetirementProjection(nil); p != (RetirementProjection{}) {
		t.Errorf("nil record should yield the zero projection, got %+v", p)
	}
}

func TestStoreRetirementProjection(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	if p := s.RetirementProjection(); p != (RetirementProjection{}) {
		t.Errorf("no record should yield the zero projection, got %+v", p)
	}
	s.SetSuper(SuperDetails{Balance: A(80000), Salary: A(100000), EmployerRate: 11.5})
	if p := s.RetirementProjection(); p.AtRetirement <= 80000 {
		t.Errorf("at retirement = %.2f, want growth above the balance", p.AtRetirement)
	}
}
