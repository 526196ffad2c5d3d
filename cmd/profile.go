package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/google/subcommands"
)

type profileCmd struct {
	mode    string
	partner string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or change the profile settings" }
func (*profileCmd) Usage() string {
	return `gma profile [-mode individual|couple] [-partner <name>]

  Without flags, shows the current profile. Couple mode lets transactions
  carry an owner and names the partner. An empty -partner resets the
  default name.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "", "Profile mode: individual or couple.")
	f.StringVar(&c.partner, "partner", "", "Partner display name.")
}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	changed := false
	if c.mode != "" {
		mode := goodmoney.ProfileMode(c.mode)
		if mode != goodmoney.Individual && mode != goodmoney.Couple {
			fmt.Fprintf(os.Stderr, "Error: -mode must be individual or couple, got %q\n", c.mode)
			return subcommands.ExitUsageError
		}
		s.SetProfileMode(mode)
		changed = true
	}
	// Presence, not value, decides: -partner "" resets to the default name.
	partnerSet := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "partner" {
			partnerSet = true
		}
	})
	if partnerSet {
		name := c.partner
		if name == "" {
			name = goodmoney.DefaultPartnerName
		}
		s.SetPartnerName(name)
		changed = true
	}

	p := s.Profile()
	if changed {
		fmt.Println("Profile updated")
	}
	fmt.Printf("Mode:    %s\n", p.Mode)
	if p.Mode == goodmoney.Couple {
		fmt.Printf("Partner: %s\n", p.PartnerName)
	}
	return subcommands.ExitSuccess
}
