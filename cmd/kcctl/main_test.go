package main

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kcctl/kcctl/internal/cmd"
	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
	"github.com/kcctl/kcctl/internal/pkg/config"
	perrors "github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
	cliVersion "github.com/kcctl/kcctl/internal/pkg/version"
)

func TestAddCommands_ShownInHelpUsage(t *testing.T) {
	req := require.New(t)

	logger := log.New()
	cfg := config.New(&config.Params{Logger: logger})
	version := cliVersion.NewVersion("kcctl", "kcctl", "1.2.3", "abc1234", "01/23/45", "CI")

	root, err := cmd.NewKcctlCommand(cfg, version, logger)
	req.NoError(err)

	output, err := pcmd.ExecuteCommand(root, "help")
	req.NoError(err)
	req.Contains(output, "apply")
	req.Contains(output, "config")
	req.Contains(output, "connector")
	req.Contains(output, "info")
	req.Contains(output, "version")
	req.Contains(output, "--context")
	req.Contains(output, "--timeout")
	req.NotContains(output, "completion")
}

func TestPrintError(t *testing.T) {
	cli := &cobra.Command{}
	stderr := new(bytes.Buffer)
	cli.SetErr(stderr)

	printError(cli, perrors.NewErrorWithSuggestions("no current context is set", "Pass `--context <name>`."))
	require.Equal(t, "Error: no current context is set\n\nSuggestions:\n    Pass `--context <name>`.\n", stderr.String())

	stderr.Reset()
	printError(cli, errors.New("boom"))
	require.Equal(t, "Error: boom\n", stderr.String())
}

func TestNoColor(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer devNull.Close()

	require.True(t, noColor("1", devNull.Fd()))
	require.True(t, noColor("", devNull.Fd()))
}
