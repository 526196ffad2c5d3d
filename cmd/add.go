package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	typ      string
	amount   string
	category string
	note     string
	date     string
	owner    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `gma add -amount <amount> -category <category> [-type income|expense] [-note <note>] [-date <date>] [-owner me|partner]

  Records a transaction in the ledger. The date defaults to now; a plain
  YYYY-MM-DD date is accepted too.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "expense", "Transaction type: income or expense.")
	f.StringVar(&c.amount, "amount", "", "Transaction amount, e.g. 42.50.")
	f.StringVar(&c.category, "category", "", "Free-text category, e.g. groceries.")
	f.StringVar(&c.note, "note", "", "Optional note.")
	f.StringVar(&c.date, "date", "", "Transaction date, ISO-8601. Defaults to now.")
	f.StringVar(&c.owner, "owner", string(goodmoney.OwnerMe), "Owner in couple mode: me or partner.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ := goodmoney.TransactionType(c.typ)
	if typ != goodmoney.Income && typ != goodmoney.Expense {
		fmt.Fprintf(os.Stderr, "Error: -type must be income or expense, got %q\n", c.typ)
		return subcommands.ExitUsageError
	}

	owner := goodmoney.Owner(c.owner)
	if owner != goodmoney.OwnerMe && owner != goodmoney.OwnerPartner {
		fmt.Fprintf(os.Stderr, "Error: -owner must be me or partner, got %q\n", c.owner)
		return subcommands.ExitUsageError
	}

	amount, err := goodmoney.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !amount.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: -amount must be positive")
		return subcommands.ExitUsageError
	}

	if c.date != "" {
		if _, err := goodmoney.ParseInstant(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, _, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	tx := s.AddTransaction(goodmoney.Transaction{
		Type:     typ,
		Amount:   amount,
		Category: c.category,
		Note:     c.note,
		Date:     c.date,
		Owner:    owner,
	})

	fmt.Printf("Recorded %s %s in %q (id %s)\n", tx.Type, tx.Amount, tx.Category, tx.ID)
	return subcommands.ExitSuccess
}
