package main

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gnonpi/rimworld-save-to-modlist/profile"
)

func runInit(t *testing.T, cmd *InitCommand, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modlist.hcl")
	status := runInit(t, &InitCommand{}, "-o", path)
	require.Equal(t, subcommands.ExitSuccess, status)

	p, ok := loadProfile(path)
	require.True(t, ok)
	require.NoError(t, p.Validate())
	require.Len(t, p.Outputs, 2)
	assert.Equal(t, profile.FormatList, p.Outputs[0].Format)
	assert.Equal(t, profile.FormatCSV, p.Outputs[1].Format)
	assert.Equal(t, ",", p.Outputs[1].Delimiter)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modlist.hcl")
	require.Equal(t, subcommands.ExitSuccess, runInit(t, &InitCommand{}, "-o", path))
	assert.Equal(t, subcommands.ExitFailure, runInit(t, &InitCommand{}, "-o", path))
}
