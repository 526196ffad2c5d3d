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

type superCmd struct {
	set   bool
	clear bool

	balance string
	fund    string
	rate    float64
	salary  string
	option  string
}

func (*superCmd) Name() string     { return "super" }
func (*superCmd) Synopsis() string { return "record superannuation and project retirement" }
func (*superCmd) Usage() string {
	return `gma super [-set -balance <amount> -salary <amount> [-rate <percent>] [-fund <name>] [-option <name>]] [-clear]

  Without flags, shows the recorded superannuation and the retirement
  projection. There is at most one record; -set replaces it wholesale.
`
}

func (c *superCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.set, "set", false, "Set (replace) the superannuation record.")
	f.BoolVar(&c.clear, "clear", false, "Remove the superannuation record.")
	f.StringVar(&c.balance, "balance", "", "Current balance.")
	f.StringVar(&c.fund, "fund", "", "Fund name.")
	f.Float64Var(&c.rate, "rate", 11.5, "Employer contribution rate in percent of salary.")
	f.StringVar(&c.salary, "salary", "", "Annual salary.")
	f.StringVar(&c.option, "option", "", "Investment option, e.g. balanced.")
}

func (c *superCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	switch {
	case c.set:
		balance, err := goodmoney.ParseAmount(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
			return subcommands.ExitUsageError
		}
		var salary goodmoney.Amount
		if c.salary != "" {
			if salary, err = goodmoney.ParseAmount(c.salary); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing salary: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		s.SetSuper(goodmoney.SuperDetails{
			Balance:          balance,
			Fund:             c.fund,
			EmployerRate:     c.rate,
			Salary:           salary,
			InvestmentOption: c.option,
		})
		fmt.Println("Superannuation recorded")
		return subcommands.ExitSuccess

	case c.clear:
		s.ClearSuper()
		fmt.Println("Superannuation removed")
		return subcommands.ExitSuccess
	}

	d, ok := s.Super()
	if !ok {
		fmt.Println("No superannuation on record.")
		return subcommands.ExitSuccess
	}
	p := s.RetirementProjection()
	printMarkdown(renderer.RenderRetirement(renderer.NewRetirement(&d, p, cfg.Currency)))
	return subcommands.ExitSuccess
}
