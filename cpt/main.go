package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/triantafd/crypto-portfolio-tracker/cmd"
)

func main() {
	// Shell completion: when invoked by the shell's completion machinery this
	// prints candidates and exits, otherwise it is a no-op.
	completion().Complete("cpt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(subcommands.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	record := map[string]complete.Predictor{
		"coin":   predict.Something,
		"amount": predict.Something,
		"fiat":   predict.Something,
		"fee":    predict.Something,
		"d":      predict.Something,
		"n":      predict.Something,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":      {Flags: record},
			"sell":     {Flags: record},
			"transfer": {Flags: record},
			"edit":     {Flags: record},
			"delete":   {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"tx":       {Flags: map[string]complete.Predictor{"coin": predict.Something, "head": predict.Something, "tail": predict.Something}},
			"fav":      {Args: predict.Something},
			"unfav":    {Args: predict.Something},
			"favs":     {Flags: map[string]complete.Predictor{"prices": predict.Nothing}},
			"coins":    {Flags: map[string]complete.Predictor{"page": predict.Something, "per-page": predict.Something}},
			"coin":     {Args: predict.Something},
			"history":  {Flags: map[string]complete.Predictor{"days": predict.Something}, Args: predict.Something},
			"summary":  {},
			"holding":  {Args: predict.Something},
			"topic":    {Args: predict.Something},
		},
		Flags: map[string]complete.Predictor{
			"storage-path": predict.Dirs("*"),
			"db":           predict.Files("*.db"),
		},
	}
}
