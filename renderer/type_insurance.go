package renderer

import (
	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
)

// InsuranceRow is one rendered policy.
type InsuranceRow struct {
	ID        string
	Type      string
	Provider  string
	Premium   string
	Frequency string
	Renewal   string
	Cover     string
}

// Insurance is the view model of the insurance report.
type Insurance struct {
	Rows       []InsuranceRow
	AnnualCost string
}

// NewInsurance builds the view model of the insurance report.
func NewInsurance(s *goodmoney.InsuranceSummary, currency string) *Insurance {
	v := &Insurance{AnnualCost: s.AnnualCost.Format(currency)}
	for _, p := range s.Policies {
		v.Rows = append(v.Rows, InsuranceRow{
			ID:        p.ID,
			Type:      string(p.Type),
			Provider:  p.Provider,
			Premium:   p.Premium.Format(currency),
			Frequency: string(p.PremiumFrequency),
			Renewal:   p.RenewalDate,
			Cover:     p.CoverAmount.Format(currency),
		})
	}
	return v
}

// RenderInsurance renders the insurance report to markdown.
func RenderInsurance(i *Insurance) string {
	return renderTemplate("insurance", "insurance.md", nil, i)
}
