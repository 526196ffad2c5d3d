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

type insuranceCmd struct {
	add bool
	del bool
	id  string

	typ      string
	provider string
	policy   string
	premium  string
	freq     string
	renewal  string
	cover    string
}

func (*insuranceCmd) Name() string     { return "insurance" }
func (*insuranceCmd) Synopsis() string { return "track insurance policies and their annual cost" }
func (*insuranceCmd) Usage() string {
	return `gma insurance [-add -type <type> -provider <name> -premium <amount> [-freq <frequency>] [-policy <number>] [-renewal <date>] [-cover <amount>]] [-delete -id <id>]

  Without flags, lists the policies and the total annualized premium.
  Types: home, car, health, life, income_protection, contents, travel.
  Frequencies: weekly, fortnightly, monthly, quarterly, annually.
`
}

func (c *insuranceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a policy.")
	f.BoolVar(&c.del, "delete", false, "Delete the policy with -id.")
	f.StringVar(&c.id, "id", "", "Policy id.")
	f.StringVar(&c.typ, "type", "", "Cover type.")
	f.StringVar(&c.provider, "provider", "", "Insurer name.")
	f.StringVar(&c.policy, "policy", "", "Policy number.")
	f.StringVar(&c.premium, "premium", "", "Premium amount per period.")
	f.StringVar(&c.freq, "freq", string(goodmoney.Monthly), "Premium frequency.")
	f.StringVar(&c.renewal, "renewal", "", "Renewal date, YYYY-MM-DD.")
	f.StringVar(&c.cover, "cover", "", "Cover amount.")
}

func (c *insuranceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	switch {
	case c.add:
		if c.provider == "" {
			fmt.Fprintln(os.Stderr, "Error: -provider is required")
			return subcommands.ExitUsageError
		}
		if !validInsuranceType(goodmoney.InsuranceType(c.typ)) {
			fmt.Fprintf(os.Stderr, "Error: -type must be one of home, car, health, life, income_protection, contents, travel, got %q\n", c.typ)
			return subcommands.ExitUsageError
		}
		if !validPremiumFrequency(goodmoney.PremiumFrequency(c.freq)) {
			fmt.Fprintf(os.Stderr, "Error: -freq must be one of weekly, fortnightly, monthly, quarterly, annually, got %q\n", c.freq)
			return subcommands.ExitUsageError
		}
		premium, err := goodmoney.ParseAmount(c.premium)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing premium: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !premium.IsPositive() {
			fmt.Fprintln(os.Stderr, "Error: -premium must be positive")
			return subcommands.ExitUsageError
		}
		var cover goodmoney.Amount
		if c.cover != "" {
			if cover, err = goodmoney.ParseAmount(c.cover); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing cover: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		p := s.AddInsurance(goodmoney.InsurancePolicy{
			Type:             goodmoney.InsuranceType(c.typ),
			Provider:         c.provider,
			PolicyNumber:     c.policy,
			Premium:          premium,
			PremiumFrequency: goodmoney.PremiumFrequency(c.freq),
			RenewalDate:      c.renewal,
			CoverAmount:      cover,
		})
		fmt.Printf("Policy with %s recorded (id %s)\n", p.Provider, p.ID)
		return subcommands.ExitSuccess

	case c.del:
		if c.id == "" {
			fmt.Fprintln(os.Stderr, "Error: -id is required")
			return subcommands.ExitUsageError
		}
		s.DeleteInsurance(c.id)
		fmt.Printf("Deleted policy %s\n", c.id)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderInsurance(renderer.NewInsurance(goodmoney.NewInsuranceSummary(s), cfg.Currency)))
	return subcommands.ExitSuccess
}

func validInsuranceType(t goodmoney.InsuranceType) bool {
	switch t {
	case goodmoney.InsuranceHome, goodmoney.InsuranceCar, goodmoney.InsuranceHealth,
		goodmoney.InsuranceLife, goodmoney.InsuranceIncomeProtection,
		goodmoney.InsuranceContents, goodmoney.InsuranceTravel:
		return true
	}
	return false
}

func validPremiumFrequency(f goodmoney.PremiumFrequency) bool {
	switch f {
	case goodmoney.Weekly, goodmoney.Fortnightly, goodmoney.Monthly,
		goodmoney.Quarterly, goodmoney.Annually:
		return true
	}
	return false
}
