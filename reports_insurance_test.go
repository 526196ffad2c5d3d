package goodmoney

import (
	"testing"

	"github.com/laurenceescalante81/Good-Money-AI-sub001/kv"
)

func TestTotalInsuranceCost(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	s.AddInsurance(InsurancePolicy{Type: InsuranceCar, Premium: A(100), PremiumFrequency: Monthly})
	s.AddInsurance(InsurancePolicy{Type: InsuranceHome, Premium: A(1200), PremiumFrequency: Annually})
	s.AddInsurance(InsurancePolicy{Type: InsuranceHealth, Premium: A(50), PremiumFrequency: Fortnightly})

	// 100*12 + 1200*1 + 50*26
	if got := s.TotalInsuranceCost(); !got.Equal(A(3700)) {
		t.Errorf("annual cost = %s, want 3700", got)
	}
}

func TestPerYear(t *testing.T) {
	tests := []struct {
		freq PremiumFrequency
		want int
	}{
		{Weekly, 52},
		{Fortnightly, 26},
		{Monthly, 12},
		{Quarterly, 4},
		{Annually, 1},
		{PremiumFrequency("daily"), 12}, // unknown counts as monthly
		{PremiumFrequency(""), 12},
	}
	for _, tc := range tests {
		if got := tc.freq.PerYear(); got != tc.want {
			t.Errorf("PerYear(%q) = %d, want %d", tc.freq, got, tc.want)
		}
	}
}

func TestNewInsuranceSummary(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	s.AddInsurance(InsurancePolicy{Type: InsuranceLife, Premium: A(30), PremiumFrequency: Monthly})

	sum := NewInsuranceSummary(s)
	if len(sum.Policies) != 1 {
		t.Fatalf("policies = %d, want 1", len(sum.Policies))
	}
	if !sum.AnnualCost.Equal(A(360)) {
		t.Errorf("annual cost = %s, want 360", sum.AnnualCost)
	}
}
