package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/gmottier/patrimoine/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI to the shell completion engine. Install it
// with `COMP_INSTALL=1 pat`.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*.jsonl"),
	},
	Sub: map[string]*complete.Command{
		"declare":      {Flags: map[string]complete.Predictor{"id": predict.Nothing, "name": predict.Nothing, "type": predict.Set{"CASH", "SAVINGS", "SCPI", "BITCOIN", "INSURANCE", "PER", "FCPI"}, "unit": predict.Set{"NONE", "SHARES", "SATS"}, "currency": predict.Set{"EUR"}}},
		"deposit":      {Flags: map[string]complete.Predictor{"i": predict.Nothing, "a": predict.Nothing, "d": predict.Nothing, "m": predict.Nothing}},
		"withdraw":     {Flags: map[string]complete.Predictor{"i": predict.Nothing, "a": predict.Nothing, "d": predict.Nothing, "m": predict.Nothing}},
		"distribution": {Flags: map[string]complete.Predictor{"i": predict.Nothing, "a": predict.Nothing, "d": predict.Nothing, "m": predict.Nothing}},
		"fee":          {Flags: map[string]complete.Predictor{"i": predict.Nothing, "a": predict.Nothing, "d": predict.Nothing, "m": predict.Nothing}},
		"buy":          {Flags: map[string]complete.Predictor{"i": predict.Nothing, "a": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing, "d": predict.Nothing, "m": predict.Nothing}},
		"sell":         {Flags: map[string]complete.Predictor{"i": predict.Nothing, "a": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing, "d": predict.Nothing, "m": predict.Nothing}},
		"value":        {Flags: map[string]complete.Predictor{"i": predict.Nothing, "p": predict.Nothing, "total": predict.Nothing, "d": predict.Nothing}},
		"set-rate":     {Flags: map[string]complete.Predictor{"i": predict.Nothing, "rate": predict.Nothing, "d": predict.Nothing}},
		"fmt":          {},
		"dashboard":    {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
		"project":      {Flags: map[string]complete.Predictor{"i": predict.Nothing, "initial": predict.Nothing, "rate": predict.Nothing, "contribution": predict.Nothing, "frequency": predict.Set{"monthly", "quarterly", "annual"}, "years": predict.Nothing}},
		"advise":       {},
		"update":       {Flags: map[string]complete.Predictor{"d": predict.Nothing, "coin": predict.Nothing}},
		"topic":        {Args: predict.Something},
	},
}

func main() {
	completion.Complete("pat")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
