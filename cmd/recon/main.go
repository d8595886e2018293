// Command recon reconciles a day's reported portfolio positions against the
// opening positions carried through that day's transactions.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&reconcileCmd{}, "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
