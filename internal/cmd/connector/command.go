package connector

import (
	"github.com/spf13/cobra"

	papply "github.com/kcctl/kcctl/internal/pkg/apply"
	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/output"
	"github.com/kcctl/kcctl/internal/pkg/utils"
)

type command struct {
	*pcmd.ContextCLICommand
	logger *log.Logger
}

type connectorRow struct {
	Name  string
	Type  string
	State string
	Tasks int
}

type taskRow struct {
	ID       int
	State    string
	WorkerID string
}

type configRow struct {
	Property string
	Value    string
}

// describeDisplay is the structured form of `connector describe`.
type describeDisplay struct {
	Name     string                  `json:"name" yaml:"name"`
	Type     string                  `json:"type" yaml:"type"`
	State    string                  `json:"state" yaml:"state"`
	WorkerID string                  `json:"worker_id" yaml:"worker_id"`
	Trace    string                  `json:"trace,omitempty" yaml:"trace,omitempty"`
	Tasks    []connect.TaskState     `json:"tasks" yaml:"tasks"`
	Config   connect.ConnectorConfig `json:"config" yaml:"config"`
}

var (
	listFields           = []string{"Name", "Type", "State", "Tasks"}
	listHumanLabels      = []string{"Name", "Type", "State", "Tasks"}
	listStructuredLabels = []string{"name", "type", "state", "tasks"}
	detailFields         = []string{"Name", "Type", "State", "WorkerID"}
	detailHumanRenames   = map[string]string{"WorkerID": "Worker ID"}
	taskFields           = []string{"ID", "State", "WorkerID"}
	taskLabels           = []string{"Task ID", "State", "Worker ID"}
	configFields         = []string{"Property", "Value"}
)

// New returns the Cobra command for `connector`.
func New(prerunner pcmd.PreRunner, logger *log.Logger) *cobra.Command {
	cliCmd := pcmd.NewContextCLICommand(
		&cobra.Command{
			Use:   "connector",
			Short: "Inspect and delete connectors.",
		}, prerunner)
	cmd := &command{
		ContextCLICommand: cliCmd,
		logger:            logger,
	}
	cmd.init()
	return cmd.Command
}

func (c *command) init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List connectors with their state.",
		RunE:  pcmd.NewCLIRunE(c.list),
		Args:  cobra.NoArgs,
	}
	output.AddFlag(listCmd)
	c.AddCommand(listCmd)

	describeCmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Describe a connector, its tasks and its configuration.",
		RunE:  pcmd.NewCLIRunE(c.describe),
		Args:  cobra.ExactArgs(1),
	}
	output.AddFlag(describeCmd)
	c.AddCommand(describeCmd)

	c.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a connector.",
		Long:  "Delete a connector. Deleting a connector that does not exist is not an error.",
		RunE:  pcmd.NewCLIRunE(c.delete),
		Args:  cobra.ExactArgs(1),
	})
}

func (c *command) list(cmd *cobra.Command, _ []string) error {
	outputWriter, err := output.NewListOutputWriter(cmd, listFields, listHumanLabels, listStructuredLabels)
	if err != nil {
		return err
	}
	ctx := pcmd.Context(cmd)
	names, err := c.Client.ListConnectors(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		status, err := c.Client.ConnectorStatus(ctx, name)
		if err != nil {
			if !errors.IsNotFound(err) {
				return err
			}
			// deleted between the two requests
			c.logger.Debugf("Connector %s disappeared while listing", name)
			continue
		}
		outputWriter.AddElement(&connectorRow{
			Name:  name,
			Type:  status.Type,
			State: status.Connector.State,
			Tasks: len(status.Tasks),
		})
	}
	outputWriter.StableSort()
	return outputWriter.Out()
}

func (c *command) describe(cmd *cobra.Command, args []string) error {
	format, err := output.GetFormat(cmd)
	if err != nil {
		return err
	}
	ctx := pcmd.Context(cmd)
	config, err := c.Client.ConnectorConfig(ctx, args[0])
	if err != nil {
		return err
	}
	status, err := c.Client.ConnectorStatus(ctx, args[0])
	if err != nil {
		return err
	}
	display := &describeDisplay{
		Name:     status.Name,
		Type:     status.Type,
		State:    status.Connector.State,
		WorkerID: status.Connector.WorkerID,
		Trace:    status.Connector.Trace,
		Tasks:    status.Tasks,
		Config:   config,
	}
	if format != output.Human {
		return output.StructuredOutput(cmd.OutOrStdout(), format, display)
	}

	utils.Println(cmd, "Connector Details")
	if err := output.DescribeObject(cmd, display, detailFields, detailHumanRenames, nil); err != nil {
		return err
	}

	utils.Println(cmd, "\n\nTask Level Details")
	tasks, err := output.NewListOutputCustomizableWriter(cmd, taskFields, taskLabels, taskLabels, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	for _, task := range status.Tasks {
		tasks.AddElement(&taskRow{ID: task.ID, State: task.State, WorkerID: task.WorkerID})
	}
	if err := tasks.Out(); err != nil {
		return err
	}

	utils.Println(cmd, "\n\nConfiguration Details")
	configs, err := output.NewListOutputCustomizableWriter(cmd, configFields, configFields, configFields, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	for _, key := range config.Keys() {
		configs.AddElement(&configRow{Property: key, Value: config[key]})
	}
	return configs.Out()
}

func (c *command) delete(cmd *cobra.Command, args []string) error {
	outcome, err := papply.NewEngine(c.Client, c.logger).Delete(pcmd.Context(cmd), args[0])
	if err != nil {
		return err
	}
	switch outcome {
	case papply.Deleted:
		utils.Printf(cmd, errors.DeletedConnectorMsg, args[0])
	case papply.Absent:
		utils.Printf(cmd, errors.AbsentConnectorMsg, args[0])
	}
	return nil
}
