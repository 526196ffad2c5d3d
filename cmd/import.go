package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/google/subcommands"
)

type importCmd struct {
	file     string
	rows     string
	date     string
	amount   string
	category string
	note     string
	dryRun   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a bank's JSON export" }
func (*importCmd) Usage() string {
	return `gma import -file <export.json> -rows <jsonpath> -date <jsonpath> -amount <jsonpath> [-category <jsonpath>] [-note <jsonpath>] [-n]

  Maps a JSON export into transactions using jsonpath expressions relative to
  each row. Negative amounts import as expenses. With -n, prints what would
  be imported without recording anything.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON export file to read.")
	f.StringVar(&c.rows, "rows", "$[*]", "Jsonpath selecting the list of rows.")
	f.StringVar(&c.date, "date", "$.date", "Jsonpath of the date within a row.")
	f.StringVar(&c.amount, "amount", "$.amount", "Jsonpath of the amount within a row.")
	f.StringVar(&c.category, "category", "", "Jsonpath of the category within a row.")
	f.StringVar(&c.note, "note", "", "Jsonpath of the note within a row.")
	f.BoolVar(&c.dryRun, "n", false, "Dry run: parse and print, record nothing.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, err := goodmoney.ImportTransactions(in, goodmoney.ImportRules{
		Rows:     c.rows,
		Date:     c.date,
		Amount:   c.amount,
		Category: c.category,
		Note:     c.note,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	if c.dryRun {
		for _, tx := range txs {
			fmt.Printf("%s  %-8s %10s  %s\n", tx.Date, tx.Type, tx.Amount, tx.Category)
		}
		fmt.Printf("Would import %d transactions\n", len(txs))
		return subcommands.ExitSuccess
	}

	s, _, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	for _, tx := range txs {
		s.AddTransaction(tx)
	}
	fmt.Printf("Imported %d transactions from %s\n", len(txs), c.file)
	return subcommands.ExitSuccess
}
