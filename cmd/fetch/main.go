// Command fetch queries Alpha Vantage through the same stack the server uses
// and prints the results as indented JSON.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

var configPath = flag.String("config", os.Getenv("CONFIG_FILE"), "path to config.json or config.toml (optional)")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "stocks")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
