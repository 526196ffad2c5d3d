// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/laurenceescalante81/Good-Money-AI-sub001/kv"
	"github.com/laurenceescalante81/Good-Money-AI-sub001/logger"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&budgetCmd{}, "ledger")
	c.Register(&goalCmd{}, "ledger")
	c.Register(&summaryCmd{}, "ledger")

	c.Register(&mortgageCmd{}, "projections")
	c.Register(&superCmd{}, "projections")
	c.Register(&insuranceCmd{}, "projections")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&profileCmd{}, "settings")
	c.Register(&topicCmd{}, "settings")
	c.Register(&assistCmd{}, "settings")
}

// Config is the environment-driven application configuration.
// A .env file in the working directory is loaded by main before parsing.
type Config struct {
	Home     string `env:"GOODMONEY_HOME"`
	Store    string `env:"GOODMONEY_STORE" envDefault:"dir"`
	Currency string `env:"GOODMONEY_CURRENCY" envDefault:"AUD"`
}

func loadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("could not parse environment: %w", err)
	}
	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("could not resolve home directory: %w", err)
		}
		cfg.Home = filepath.Join(home, ".goodmoney")
	}
	return cfg, nil
}

// openStore opens the configured backend, loads the ledger into memory and
// returns the ready store with its close function.
func openStore(ctx context.Context) (*goodmoney.Store, Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, nil, err
	}

	var db kv.Store
	var closeDB func()
	switch cfg.Store {
	case "sqlite":
		if err := os.MkdirAll(cfg.Home, 0755); err != nil {
			return nil, cfg, nil, fmt.Errorf("could not create %q: %w", cfg.Home, err)
		}
		sq, err := kv.OpenSQLite(filepath.Join(cfg.Home, "goodmoney.db"))
		if err != nil {
			return nil, cfg, nil, fmt.Errorf("could not open sqlite store: %w", err)
		}
		db, closeDB = sq, func() { sq.Close() }
	case "dir":
		db, closeDB = kv.NewDir(cfg.Home), func() {}
	default:
		return nil, cfg, nil, fmt.Errorf("unknown store backend %q (want dir or sqlite)", cfg.Store)
	}

	s := goodmoney.NewStore(db, goodmoney.WithLogger(logger.New()))
	s.Load(ctx)

	closer := func() {
		s.Close()
		closeDB()
	}
	return s, cfg, closer, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
