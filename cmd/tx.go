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

type txCmd struct {
	month    string
	head     int
	deleteID string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list or delete transactions" }
func (*txCmd) Usage() string {
	return `gma tx [-m <YYYY-MM>] [-head <n>] [-delete <id>]

  Lists transactions, newest first. With -m, only the given month. With
  -delete, removes the transaction instead.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to list, YYYY-MM. All months by default.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.StringVar(&c.deleteID, "delete", "", "Delete the transaction with this id.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if c.deleteID != "" {
		s.DeleteTransaction(c.deleteID)
		fmt.Printf("Deleted transaction %s\n", c.deleteID)
		return subcommands.ExitSuccess
	}

	var txs []goodmoney.Transaction
	if c.month != "" {
		m, err := goodmoney.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		txs = s.MonthlyTransactions(m)
	} else {
		txs = s.Transactions()
	}

	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}

	printMarkdown(renderer.RenderTransactions(txs, cfg.Currency))
	return subcommands.ExitSuccess
}
