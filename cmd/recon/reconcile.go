package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/homier/probemap/recon"
)

type reconcileCmd struct {
	output string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "report positions that do not match the day's transactions" }
func (*reconcileCmd) Usage() string {
	return `recon reconcile [-o <output>] <input>

  Reads the D0-POS, D1-TRN and D1-POS sections of <input>, replays the
  transactions on the opening positions and writes every position that
  differs from the reported closing one, cash first.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "recon.out", "Path of the report file.")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "reconcile requires exactly one input file")
		return subcommands.ExitUsageError
	}

	if err := c.run(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *reconcileCmd) run(input string) error {
	r, err := os.Open(input)
	if err != nil {
		return err
	}
	defer r.Close()

	in, err := recon.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", input, err)
	}

	report, err := recon.Reconcile(in)
	if err != nil {
		return fmt.Errorf("reconciling %q: %w", input, err)
	}

	if report.OK() {
		log.Println("all positions reconciled")
	} else {
		log.Printf("%d positions failed reconciliation", len(report.Positions))
	}

	return os.WriteFile(c.output, []byte(report.String()+"\n"), 0o644)
}
