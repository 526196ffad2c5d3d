package goodmoney

// TotalInsuranceCost sums every policy's premium annualized by its payment
// frequency.
func (s *Store) TotalInsuranceCost() Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total Amount
	for _, p := range s.insurance {
		total = total.Add(p.Premium.MulInt(p.PremiumFrequency.PerYear()))
	}
	return total
}

// InsuranceSummary is the overview of all covers held.
type InsuranceSummary struct {
	Policies   []InsurancePolicy
	AnnualCost Amount
}

// NewInsuranceSummary computes the overview of the current policies.
func NewInsuranceSummary(s *Store) *InsuranceSummary {
	return &InsuranceSummary{
		Policies:   s.Insurance(),
		AnnualCost: s.TotalInsuranceCost(),
	}
}
