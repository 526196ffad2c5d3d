package renderer

import (
	"fmt"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
)

// Mortgage is the view model of a mortgage projection.
type Mortgage struct {
	Lender           string
	LoanAmount       string
	InterestRate     string
	TermYears        int
	RepaymentType    string
	MonthlyRepayment string
	TotalPayment     string
	TotalInterest    string
	YearsRemaining   string
}

// NewMortgage builds the view model from the record and its projection.
func NewMortgage(m *goodmoney.MortgageDetails, p goodmoney.MortgageProjection, currency string) *Mortgage {
	if m == nil {
		return nil
	}
	return &Mortgage{
		Lender:           m.Lender,
		LoanAmount:       m.LoanAmount.Format(currency),
		InterestRate:     fmt.Sprintf("%.2f%%", m.InterestRate),
		TermYears:        m.LoanTermYears,
		RepaymentType:    string(m.RepaymentType),
		MonthlyRepayment: goodmoney.A(p.MonthlyRepayment).Format(currency),
		TotalPayment:     goodmoney.A(p.TotalPayment).Format(currency),
		TotalInterest:    goodmoney.A(p.TotalInterest).Format(currency),
		YearsRemaining:   fmt.Sprintf("%.1f", p.YearsRemaining),
	}
}

// RenderMortgage renders the mortgage projection to markdown. A nil view
// renders a short "no mortgage" note.
func RenderMortgage(m *Mortgage) string {
	return renderTemplate("mortgage", "mortgage.md", nil, m)
}

// Retirement is the view model of a retirement projection.
type Retirement struct {
	Fund                string
	Balance             string
	YearsToRetirement   int
	AnnualContribution  string
	AtRetirement        string
	MonthlyInRetirement string
}

// NewRetirement builds the view model from the record and its projection.
func NewRetirement(d *goodmoney.SuperDetails, p goodmoney.RetirementProjection, currency string) *Retirement {
	if d == nil {
		return nil
	}
	return &Retirement{
		Fund:                d.Fund,
		Balance:             d.Balance.Format(currency),
		YearsToRetirement:   p.YearsToRetirement,
		AnnualContribution:  goodmoney.A(p.AnnualContribution).Format(currency),
		AtRetirement:        goodmoney.A(p.AtRetirement).Format(currency),
		MonthlyInRetirement: goodmoney.A(p.MonthlyInRetirement).Format(currency),
	}
}

// RenderRetirement renders the retirement projection to markdown.
func RenderRetirement(r *Retirement) string {
	return renderTemplate("retirement", "retirement.md", nil, r)
}
