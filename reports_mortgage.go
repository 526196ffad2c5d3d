package goodmoney

import (
	"math"
	"time"
)

const monthsPerYear = 12

// MortgageProjection is the repayment schedule derived from the mortgage
// record and "now". The projection engine works in floating point; only
// stored amounts are exact decimals.
type MortgageProjection struct {
	MonthlyRepayment float64 // base repayment plus the extra monthly add-on
	TotalPayment     float64 // over the original scheduled term
	TotalInterest    float64
	MonthsElapsed    int
	YearsRemaining   float64
}

// NewMortgageProjection computes the repayment projection. A nil mortgage
// yields the zero projection.
//
// The extra repayment raises the monthly figure but the schedule length is
// left unchanged, so TotalPayment and TotalInterest are computed against the
// original term rather than a recalculated payoff date. That matches the
// product's definition of these figures; re-amortizing would change them.
func NewMortgageProjection(m *MortgageDetails, now time.Time) MortgageProjection {
	if m == nil {
		return MortgageProjection{}
	}

	principal := m.LoanAmount.InexactFloat64()
	monthlyRate := (m.InterestRate / 100) / monthsPerYear
	months := float64(m.LoanTermYears * monthsPerYear)

	var base float64
	switch {
	case m.RepaymentType == InterestOnly:
		base = principal * monthlyRate
	case monthlyRate == 0:
		// Zero interest amortizes as a straight-line division.
		base = principal / months
	default:
		pow := math.Pow(1+monthlyRate, months)
		base = principal * monthlyRate * pow / (pow - 1)
	}

	monthly := base + m.ExtraRepayment.InexactFloat64()
	totalPayment := monthly * months
	totalInterest := math.Max(0, totalPayment-principal)

	monthsElapsed := 0
	if start, err := ParseInstant(m.StartDate); err == nil {
		monthsElapsed = MonthsBetween(start, now)
	}
	yearsRemaining := math.Max(0, (months-float64(monthsElapsed))/monthsPerYear)

	return MortgageProjection{
		MonthlyRepayment: monthly,
		TotalPayment:     totalPayment,
		TotalInterest:    totalInterest,
		MonthsElapsed:    monthsElapsed,
		YearsRemaining:   yearsRemaining,
	}
}

// MortgageProjection computes the projection for the stored mortgage as of
// the clock's "now".
func (s *Store) MortgageProjection() MortgageProjection {
	s.mu.RLock()
	m := s.mortgage
	s.mu.RUnlock()
	return NewMortgageProjection(m, s.clock.Now())
}
