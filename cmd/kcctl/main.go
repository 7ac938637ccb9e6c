package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kcctl/kcctl/internal/cmd"
	"github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/utils"
	cliVersion "github.com/kcctl/kcctl/internal/pkg/version"
)

var (
	// Injected from linker flags like `go build -ldflags "-X main.version=$VERSION" -X ...`
	version = "v0.0.0"
	commit  = ""
	date    = ""
	host    = ""
)

const cliName = "kcctl"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	color.NoColor = noColor(os.Getenv("NO_COLOR"), os.Stderr.Fd())
	logger := log.New()
	cfg := config.New(&config.Params{
		CLIName: cliName,
		Logger:  logger,
	})
	ver := cliVersion.NewVersion(cliName, cliName, version, commit, date, host)

	cli, err := cmd.NewKcctlCommand(cfg, ver, logger)
	if err != nil {
		logger.Error(err)
		return 1
	}
	cli.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cli.ExecuteContext(ctx); err != nil {
		printError(cli, err)
		return 1
	}
	return 0
}

func printError(cli *cobra.Command, err error) {
	utils.ErrPrintln(cli, "Error: "+err.Error())
	errors.DisplaySuggestionsMessage(err, cli.ErrOrStderr())
}

// noColor disables highlighting when NO_COLOR is set or stderr is not a terminal.
func noColor(env string, fd uintptr) bool {
	return env != "" || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}
