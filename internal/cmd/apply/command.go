package apply

import (
	"github.com/spf13/cobra"

	papply "github.com/kcctl/kcctl/internal/pkg/apply"
	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/examples"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/utils"
)

type command struct {
	*pcmd.ContextCLICommand
	logger *log.Logger
}

// New returns the Cobra command for `apply`.
func New(prerunner pcmd.PreRunner, logger *log.Logger) *cobra.Command {
	cliCmd := pcmd.NewContextCLICommand(
		&cobra.Command{
			Use:   "apply",
			Short: "Create or update connectors from configuration files.",
			Long: "Create or update connectors from configuration files. Each document is sent to the cluster " +
				"of the current context with a single PUT; a connector that does not exist yet is created.",
			Args: cobra.NoArgs,
			Example: examples.BuildExampleString(
				examples.Example{
					Text: "Create or update the connector described in `local-file-source.json`.",
					Code: "kcctl apply -f local-file-source.json",
				},
				examples.Example{
					Text: "Apply every `.json` and `.properties` file in a directory, four at a time.",
					Code: "kcctl apply -f connectors/ --parallelism 4",
				},
				examples.Example{
					Text: "Read the configuration from stdin.",
					Code: "cat local-file-source.json | kcctl apply -f -",
				},
			),
		}, prerunner)
	cmd := &command{
		ContextCLICommand: cliCmd,
		logger:            logger,
	}
	cmd.init()
	return cmd.Command
}

func (c *command) init() {
	c.RunE = pcmd.NewCLIRunE(c.apply)
	c.Flags().StringArrayP("file", "f", nil, "Connector configuration file, directory, or - for stdin. May be repeated.")
	c.Flags().Int("parallelism", 1, "Number of configurations sent to the cluster at once.")
	c.Flags().SortFlags = false
}

func (c *command) apply(cmd *cobra.Command, _ []string) error {
	files, err := cmd.Flags().GetStringArray("file")
	if err != nil {
		return err
	}
	parallelism, err := cmd.Flags().GetInt("parallelism")
	if err != nil {
		return err
	}
	engine, err := papply.NewEngine(c.Client, c.logger).WithParallelism(parallelism)
	if err != nil {
		return err
	}
	docs, err := papply.LoadDocuments(files, cmd.InOrStdin())
	if err != nil {
		return err
	}

	results := engine.ApplyAll(pcmd.Context(cmd), docs)
	for _, result := range results {
		report(cmd, result)
	}
	return results.Err()
}

func report(cmd *cobra.Command, result papply.Result) {
	if result.Err != nil {
		utils.ErrPrintf(cmd, errors.FailedToApplyMsg, result.Source, result.Err.Error())
		return
	}
	switch result.Outcome.Kind {
	case papply.Created:
		utils.Printf(cmd, errors.CreatedConnectorMsg, result.Outcome.Name)
	case papply.Updated:
		utils.Printf(cmd, errors.UpdatedConnectorMsg, result.Outcome.Name)
	case papply.ValidationFailed:
		reportValidation(cmd, result.Outcome.Name, result.Outcome.Errors)
	}
}

func reportValidation(cmd *cobra.Command, name string, fieldErrors []connect.FieldError) {
	utils.ErrPrintfHighlighted(cmd, errors.ValidationFailedMsg, name)
	for _, fieldErr := range fieldErrors {
		if fieldErr.Property == "" {
			utils.ErrPrintf(cmd, errors.ValidationGeneralErrorMsg, fieldErr.Message)
			continue
		}
		utils.ErrPrintf(cmd, errors.ValidationFieldErrorMsg, fieldErr.Property, fieldErr.Message)
	}
}
