package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

func TestReconcileCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "recon.in")
	output := filepath.Join(dir, "recon.out")

	err := os.WriteFile(input, []byte("D0-POS\nAAPL 100\nCash 10\n\nD1-TRN\nAAPL SELL 10 100\n\nD1-POS\nAAPL 90\nCash 100\n"), 0o644)
	require.NoError(t, err)

	cmd := &reconcileCmd{}
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-o", output, input}))

	require.Equal(t, subcommands.ExitSuccess, cmd.Execute(context.Background(), f))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "Cash -10\n", string(got))
}

func TestReconcileCmd_Usage(t *testing.T) {
	cmd := &reconcileCmd{}
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(nil))

	require.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), f))
}

func TestReconcileCmd_MissingInput(t *testing.T) {
	cmd := &reconcileCmd{}
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-o", filepath.Join(t.TempDir(), "out"), "does-not-exist"}))

	require.Equal(t, subcommands.ExitFailure, cmd.Execute(context.Background(), f))
}
