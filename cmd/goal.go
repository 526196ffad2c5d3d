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

type goalCmd struct {
	add     bool
	del     bool
	deposit string
	id      string
	name    string
	target  string
	by      string
	icon    string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "manage savings goals" }
func (*goalCmd) Usage() string {
	return `gma goal [-add -name <name> -target <amount> [-by <date>] [-icon <icon>]]
        [-deposit <amount> -id <id>] [-delete -id <id>]

  Without flags, lists the goals with their progress. Deposits may be
  negative to withdraw; the balance never goes below zero.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a goal.")
	f.BoolVar(&c.del, "delete", false, "Delete the goal with -id.")
	f.StringVar(&c.deposit, "deposit", "", "Deposit (or withdraw, if negative) into the goal with -id.")
	f.StringVar(&c.id, "id", "", "Goal id.")
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.target, "target", "", "Target amount.")
	f.StringVar(&c.by, "by", "", "Target date, YYYY-MM-DD.")
	f.StringVar(&c.icon, "icon", "", "Optional display icon.")
}

func (c *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	switch {
	case c.add:
		if c.name == "" {
			fmt.Fprintln(os.Stderr, "Error: -name is required")
			return subcommands.ExitUsageError
		}
		target, err := goodmoney.ParseAmount(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !target.IsPositive() {
			fmt.Fprintln(os.Stderr, "Error: -target must be positive")
			return subcommands.ExitUsageError
		}
		g := s.AddGoal(goodmoney.SavingsGoal{
			Name:         c.name,
			TargetAmount: target,
			TargetDate:   c.by,
			Icon:         c.icon,
		})
		fmt.Printf("Goal %q created (id %s)\n", g.Name, g.ID)
		return subcommands.ExitSuccess

	case c.deposit != "":
		if c.id == "" {
			fmt.Fprintln(os.Stderr, "Error: -id is required")
			return subcommands.ExitUsageError
		}
		delta, err := goodmoney.ParseAmount(c.deposit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing deposit: %v\n", err)
			return subcommands.ExitUsageError
		}
		g, ok := s.UpdateGoalAmount(c.id, delta)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no goal with id %q\n", c.id)
			return subcommands.ExitFailure
		}
		fmt.Printf("Goal %q now at %s of %s\n", g.Name, g.CurrentAmount.Format(cfg.Currency), g.TargetAmount.Format(cfg.Currency))
		return subcommands.ExitSuccess

	case c.del:
		if c.id == "" {
			fmt.Fprintln(os.Stderr, "Error: -id is required")
			return subcommands.ExitUsageError
		}
		s.DeleteGoal(c.id)
		fmt.Printf("Deleted goal %s\n", c.id)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderGoals(renderer.NewGoals(s.Goals(), cfg.Currency)))
	return subcommands.ExitSuccess
}
