package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/laurenceescalante81/Good-Money-AI-sub001/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Install it with
// COMP_INSTALL=1 gma.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"add": {Flags: map[string]complete.Predictor{
			"type":     predict.Set{"income", "expense"},
			"amount":   predict.Something,
			"category": predict.Something,
			"note":     predict.Something,
			"date":     predict.Something,
			"owner":    predict.Set{"me", "partner"},
		}},
		"tx": {Flags: map[string]complete.Predictor{
			"m":      predict.Something,
			"head":   predict.Something,
			"delete": predict.Something,
		}},
		"budget": {Flags: map[string]complete.Predictor{
			"add":      predict.Nothing,
			"delete":   predict.Nothing,
			"category": predict.Something,
			"limit":    predict.Something,
			"color":    predict.Something,
		}},
		"goal": {Flags: map[string]complete.Predictor{
			"add":     predict.Nothing,
			"delete":  predict.Nothing,
			"deposit": predict.Something,
			"id":      predict.Something,
			"name":    predict.Something,
			"target":  predict.Something,
			"by":      predict.Something,
		}},
		"summary": {Flags: map[string]complete.Predictor{
			"m": predict.Something,
		}},
		"mortgage": {Flags: map[string]complete.Predictor{
			"set":       predict.Nothing,
			"clear":     predict.Nothing,
			"repayment": predict.Set{"principal_interest", "interest_only"},
		}},
		"super": {Flags: map[string]complete.Predictor{
			"set":   predict.Nothing,
			"clear": predict.Nothing,
		}},
		"insurance": {Flags: map[string]complete.Predictor{
			"add":    predict.Nothing,
			"delete": predict.Nothing,
			"type":   predict.Set{"home", "car", "health", "life", "income_protection", "contents", "travel"},
			"freq":   predict.Set{"weekly", "fortnightly", "monthly", "quarterly", "annually"},
		}},
		"import": {Flags: map[string]complete.Predictor{
			"file": predict.Files("*.json"),
			"n":    predict.Nothing,
		}},
		"export": {Flags: map[string]complete.Predictor{
			"o": predict.Files("*.csv"),
		}},
		"profile": {Flags: map[string]complete.Predictor{
			"mode":    predict.Set{"individual", "couple"},
			"partner": predict.Something,
		}},
		"topic":  {Args: predict.Something},
		"assist": {Args: predict.Something},
	},
}

func main() {
	completion.Complete("gma")

	// A .env next to the binary's working directory may carry GOODMONEY_*.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
