package version

import (
	"github.com/spf13/cobra"

	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
	"github.com/kcctl/kcctl/internal/pkg/utils"
	"github.com/kcctl/kcctl/internal/pkg/version"
)

// NewVersionCmd returns the Cobra command for the version.
func NewVersionCmd(prerunner pcmd.PreRunner, version *version.Version) *cobra.Command {
	cliCmd := pcmd.NewAnonymousCLICommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the " + version.Binary + " version.",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				utils.Println(cmd, version)
			},
		}, prerunner)
	return cliCmd.Command
}
