package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kcctl/kcctl/internal/cmd/apply"
	"github.com/kcctl/kcctl/internal/cmd/config"
	"github.com/kcctl/kcctl/internal/cmd/connector"
	"github.com/kcctl/kcctl/internal/cmd/info"
	"github.com/kcctl/kcctl/internal/cmd/version"
	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
	configs "github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/log"
	versions "github.com/kcctl/kcctl/internal/pkg/version"
)

const cliName = "kcctl"

// NewKcctlCommand builds the root command. cfg is loaded by the pre-runners once flags are parsed.
func NewKcctlCommand(cfg *configs.Config, ver *versions.Version, logger *log.Logger) (*cobra.Command, error) {
	cli := &cobra.Command{
		Use:           cliName,
		Short:         "Manage Kafka Connect clusters from the command line.",
		Version:       ver.Version,
		SilenceErrors: true,
	}
	cli.CompletionOptions.DisableDefaultCmd = true
	cli.PersistentFlags().AddFlagSet(pcmd.GlobalSet())
	if err := pcmd.BindGlobalFlags(cli); err != nil {
		return nil, err
	}

	prerunner := &pcmd.PreRun{
		CLIName: cliName,
		Version: ver,
		Logger:  logger,
		Config:  cfg,
	}

	cli.AddCommand(version.NewVersionCmd(prerunner, ver))
	cli.AddCommand(config.New(prerunner))
	cli.AddCommand(apply.New(prerunner, logger))
	cli.AddCommand(info.New(prerunner))
	cli.AddCommand(connector.New(prerunner, logger))

	return cli, nil
}
