package config

import (
	"github.com/spf13/cobra"

	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
)

// New returns the `config` command. Its subcommands only read and write the context store.
func New(prerunner pcmd.PreRunner) *cobra.Command {
	c := pcmd.NewAnonymousCLICommand(
		&cobra.Command{
			Use:   "config",
			Short: "Modify the kcctl configuration.",
			Long:  "Manage the named Kafka Connect cluster contexts kcctl talks to.",
		}, prerunner)
	c.AddCommand(NewContext(prerunner))
	return c.Command
}
