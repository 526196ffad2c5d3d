package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	add      bool
	del      bool
	category string
	limit    string
	color    string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "add, delete or list monthly category budgets" }
func (*budgetCmd) Usage() string {
	return `gma budget [-add -category <category> -limit <amount> [-color <color>]] [-delete -category <category>]

  Without flags, lists the budgets with the current month's spending. One
  budget per category; adding a duplicate category is rejected.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a budget.")
	f.BoolVar(&c.del, "delete", false, "Delete the budget for -category.")
	f.StringVar(&c.category, "category", "", "Budget category.")
	f.StringVar(&c.limit, "limit", "", "Monthly limit, e.g. 600.")
	f.StringVar(&c.color, "color", "", "Optional display color.")
}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	switch {
	case c.add:
		if c.category == "" {
			fmt.Fprintln(os.Stderr, "Error: -category is required")
			return subcommands.ExitUsageError
		}
		limit, err := goodmoney.ParseAmount(c.limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing limit: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !limit.IsPositive() {
			fmt.Fprintln(os.Stderr, "Error: -limit must be positive")
			return subcommands.ExitUsageError
		}
		for _, b := range s.Budgets() {
			if b.Category == c.category {
				fmt.Fprintf(os.Stderr, "Error: a budget for %q already exists, delete it first\n", c.category)
				return subcommands.ExitFailure
			}
		}
		s.AddBudget(goodmoney.Budget{Category: c.category, Limit: limit, Color: c.color})
		fmt.Printf("Budget for %q set to %s per month\n", c.category, limit)
		return subcommands.ExitSuccess

	case c.del:
		if c.category == "" {
			fmt.Fprintln(os.Stderr, "Error: -category is required")
			return subcommands.ExitUsageError
		}
		s.DeleteBudget(c.category)
		fmt.Printf("Deleted budget for %q\n", c.category)
		return subcommands.ExitSuccess
	}

	month := s.CurrentMonth()
	fmt.Printf("Budgets for %s:\n", month)
	for _, b := range s.Budgets() {
		spent := s.SpentByCategory(b.Category)
		fmt.Printf("  %-20s %s / %s\n", b.Category, spent.Format(cfg.Currency), b.Limit.Format(cfg.Currency))
	}
	return subcommands.ExitSuccess
}
