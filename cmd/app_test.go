package cmd

import (
	"context"
	"flag"
	"testing"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/laurenceescalante81/Good-Money-AI-sub001/kv"
	"github.com/google/subcommands"
)

// testHome points the commands at a throwaway dir-backed ledger.
func testHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("GOODMONEY_HOME", home)
	t.Setenv("GOODMONEY_STORE", "dir")
	t.Setenv("GOODMONEY_CURRENCY", "AUD")
	return home
}

// run drives one subcommand the way the commander would.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), fs)
}

// loadLedger reopens the persisted ledger for assertions.
func loadLedger(t *testing.T, home string) *goodmoney.Store {
	t.Helper()
	s := goodmoney.NewStore(kv.NewDir(home))
	s.Load(context.Background())
	return s
}

func mustAmount(t *testing.T, s string) goodmoney.Amount {
	t.Helper()
	a, err := goodmoney.ParseAmount(s)
	if err != nil {
		t.Fatalf("parsing amount %q: %v", s, err)
	}
	return a
}
