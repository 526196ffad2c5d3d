package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/laurenceescalante81/Good-Money-AI-sub001/renderer"
	"github.com/google/subcommands"
)

type mortgageCmd struct {
	set   bool
	clear bool

	loan      string
	rate      float64
	years     int
	repayment string
	extra     string
	value     string
	start     string
	lender    string
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "record the mortgage and project its repayments" }
func (*mortgageCmd) Usage() string {
	return `gma mortgage [-set -loan <amount> -rate <percent> -years <n> [-repayment principal_interest|interest_only] [-extra <amount>] [-value <amount>] [-start <date>] [-lender <name>]] [-clear]

  Without flags, shows the recorded mortgage and its projection. There is at
  most one mortgage; -set replaces it wholesale.
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.set, "set", false, "Set (replace) the mortgage record.")
	f.BoolVar(&c.clear, "clear", false, "Remove the mortgage record.")
	f.StringVar(&c.loan, "loan", "", "Loan amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent, e.g. 5.8.")
	f.IntVar(&c.years, "years", 0, "Loan term in years.")
	f.StringVar(&c.repayment, "repayment", string(goodmoney.PrincipalInterest), "Repayment type: principal_interest or interest_only.")
	f.StringVar(&c.extra, "extra", "", "Extra monthly repayment.")
	f.StringVar(&c.value, "value", "", "Property value.")
	f.StringVar(&c.start, "start", "", "Loan start date, YYYY-MM-DD.")
	f.StringVar(&c.lender, "lender", "", "Lender name.")
}

func (c *mortgageCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	switch {
	case c.set:
		loan, err := goodmoney.ParseAmount(c.loan)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing loan: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !loan.IsPositive() {
			fmt.Fprintln(os.Stderr, "Error: -loan must be positive")
			return subcommands.ExitUsageError
		}
		if c.years <= 0 {
			fmt.Fprintln(os.Stderr, "Error: -years must be positive")
			return subcommands.ExitUsageError
		}
		repayment := goodmoney.RepaymentType(c.repayment)
		if repayment != goodmoney.PrincipalInterest && repayment != goodmoney.InterestOnly {
			fmt.Fprintf(os.Stderr, "Error: -repayment must be principal_interest or interest_only, got %q\n", c.repayment)
			return subcommands.ExitUsageError
		}
		var extra, value goodmoney.Amount
		if c.extra != "" {
			if extra, err = goodmoney.ParseAmount(c.extra); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing extra: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.value != "" {
			if value, err = goodmoney.ParseAmount(c.value); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing value: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		s.SetMortgage(goodmoney.MortgageDetails{
			LoanAmount:     loan,
			InterestRate:   c.rate,
			LoanTermYears:  c.years,
			RepaymentType:  repayment,
			ExtraRepayment: extra,
			PropertyValue:  value,
			StartDate:      c.start,
			Lender:         c.lender,
		})
		fmt.Println("Mortgage recorded")
		return subcommands.ExitSuccess

	case c.clear:
		s.ClearMortgage()
		fmt.Println("Mortgage removed")
		return subcommands.ExitSuccess
	}

	m, ok := s.Mortgage()
	if !ok {
		printMarkdown(renderer.RenderMortgage(nil))
		return subcommands.ExitSuccess
	}
	p := s.MortgageProjection()
	printMarkdown(renderer.RenderMortgage(renderer.NewMortgage(&m, p, cfg.Currency)))
	return subcommands.ExitSuccess
}
