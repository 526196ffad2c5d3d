package goodmoney

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Owner identifies whose transaction it is in couple mode.
type Owner string

const (
	OwnerMe      Owner = "me"
	OwnerPartner Owner = "partner"
)

// Transaction is a single income or expense entry. It is immutable once
// created; the only way to change one is to delete it.
type Transaction struct {
	ID       string          `json:"id"`
	Type     TransactionType `json:"type"`
	Amount   Amount          `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     string          `json:"date"` // ISO-8601 instant or plain date
	Owner    Owner           `json:"owner"`
}

// Budget caps monthly spending for one category. Category values are unique
// across budgets by convention; the uniqueness is enforced by callers, the
// store stays permissive.
type Budget struct {
	Category string `json:"category"`
	Limit    Amount `json:"limit"` // monthly
	Color    string `json:"color,omitempty"`
}

// SavingsGoal tracks progress towards a target amount. CurrentAmount starts
// at zero, never goes below zero, and may exceed the target.
type SavingsGoal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  Amount `json:"targetAmount"`
	CurrentAmount Amount `json:"currentAmount"`
	TargetDate    string `json:"targetDate"`
	Icon          string `json:"icon,omitempty"`
}

// RepaymentType selects the mortgage repayment model.
type RepaymentType string

const (
	PrincipalInterest RepaymentType = "principal_interest"
	InterestOnly      RepaymentType = "interest_only"
)

// MortgageDetails is the at-most-one mortgage record, replaced wholesale on
// every edit.
type MortgageDetails struct {
	LoanAmount     Amount        `json:"loanAmount"`
	InterestRate   float64       `json:"interestRate"` // annual percent
	LoanTermYears  int           `json:"loanTermYears"`
	RepaymentType  RepaymentType `json:"repaymentType"`
	ExtraRepayment Amount        `json:"extraRepayment"` // monthly add-on
	PropertyValue  Amount        `json:"propertyValue"`
	StartDate      string        `json:"startDate"`
	Lender         string        `json:"lender,omitempty"`
}

// SuperDetails is the at-most-one superannuation record, replaced wholesale.
type SuperDetails struct {
	Balance          Amount  `json:"balance"`
	Fund             string  `json:"fund,omitempty"`
	EmployerRate     float64 `json:"employerRate"` // percent of salary
	Salary           Amount  `json:"salary"`       // annual
	InvestmentOption string  `json:"investmentOption,omitempty"`
	LastUpdated      string  `json:"lastUpdated,omitempty"`
}

// InsuranceType is the kind of cover a policy provides.
type InsuranceType string

const (
	InsuranceHome             InsuranceType = "home"
	InsuranceCar              InsuranceType = "car"
	InsuranceHealth           InsuranceType = "health"
	InsuranceLife             InsuranceType = "life"
	InsuranceIncomeProtection InsuranceType = "income_protection"
	InsuranceContents         InsuranceType = "contents"
	InsuranceTravel           InsuranceType = "travel"
)

// PremiumFrequency is how often an insurance premium falls due.
type PremiumFrequency string

const (
	Weekly      PremiumFrequency = "weekly"
	Fortnightly PremiumFrequency = "fortnightly"
	Monthly     PremiumFrequency = "monthly"
	Quarterly   PremiumFrequency = "quarterly"
	Annually    PremiumFrequency = "annually"
)

// PerYear returns the number of premium payments in a year. An unknown
// frequency counts as monthly.
func (f PremiumFrequency) PerYear() int {
	switch f {
	case Weekly:
		return 52
	case Fortnightly:
		return 26
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Annually:
		return 1
	default:
		return 12
	}
}

// InsurancePolicy is one cover held by the user.
type InsurancePolicy struct {
	ID               string           `json:"id"`
	Type             InsuranceType    `json:"type"`
	Provider         string           `json:"provider"`
	PolicyNumber     string           `json:"policyNumber,omitempty"`
	Premium          Amount           `json:"premium"`
	PremiumFrequency PremiumFrequency `json:"premiumFrequency"`
	RenewalDate      string           `json:"renewalDate"`
	CoverAmount      Amount           `json:"coverAmount"`
}

// ProfileMode switches the app between a single user and a couple.
type ProfileMode string

const (
	Individual ProfileMode = "individual"
	Couple     ProfileMode = "couple"
)

// DefaultPartnerName is the partner label before the user names them.
const DefaultPartnerName = "Partner"

// Profile holds the user-level settings, updated in place.
type Profile struct {
	Mode        ProfileMode `json:"profileMode"`
	PartnerName string      `json:"partnerName"`
}

// DefaultProfile is the profile of a fresh install.
func DefaultProfile() Profile {
	return Profile{Mode: Individual, PartnerName: DefaultPartnerName}
}
