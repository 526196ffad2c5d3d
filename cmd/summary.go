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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a monthly income and spending summary" }
func (*summaryCmd) Usage() string {
	return `gma summary [-m <YYYY-MM>]

  Displays the month's income, expenses, net, and every budget against its
  spending. The current month is the default.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to summarize, YYYY-MM. Defaults to the current month.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	month := s.CurrentMonth()
	if c.month != "" {
		month, err = goodmoney.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	sum := goodmoney.NewMonthlySummary(s, month)
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(sum, cfg.Currency)))
	return subcommands.ExitSuccess
}
