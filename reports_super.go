package goodmoney

// The retirement model runs on assumptions, not user input: there is no
// birth-date field upstream, so the user's age is always taken as 30. A
// known product limitation, kept on purpose.
const (
	assumedCurrentAge    = 30
	assumedRetirementAge = 67
	annualGrowthRate     = 0.07 // nominal annual growth
	drawdownRate         = 0.04 // annual drawdown in retirement
)

// RetirementProjection is the compounded superannuation outlook.
type RetirementProjection struct {
	YearsToRetirement   int
	AnnualContribution  float64
	AtRetirement        float64
	MonthlyInRetirement float64
}

// NewRetirementProjection compounds the balance forward year by year:
// contributions are added before growth is applied, once per year. A nil
// record yields the zero projection.
func NewRetirementProjection(d *SuperDetails) RetirementProjection {
	if d == nil {
		return RetirementProjection{}
	}

	years := assumedRetirementAge - assumedCurrentAge
	contribution := d.Salary.InexactFloat64() * d.EmployerRate / 100

	balance := d.Balance.InexactFloat64()
	for i := 0; i < years; i++ {
		balance = (balance + contribution) * (1 + annualGrowthRate)
	}

	return RetirementProjection{
		YearsToRetirement:   years,
		AnnualContribution:  contribution,
		AtRetirement:        balance,
		MonthlyInRetirement: balance * drawdownRate / monthsPerYear,
	}
}

// RetirementProjection computes the projection for the stored record.
func (s *Store) RetirementProjection() RetirementProjection {
	s.mu.RLock()
	d := s.super
	s.mu.RUnlock()
	return NewRetirementProjection(d)
}
