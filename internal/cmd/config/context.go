package config

import (
	"github.com/spf13/cobra"

	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
	pconfig "github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/examples"
	"github.com/kcctl/kcctl/internal/pkg/output"
	"github.com/kcctl/kcctl/internal/pkg/utils"
)

var (
	listFields           = []string{"Current", "Name", "Cluster", "Username"}
	listHumanLabels      = []string{"Current", "Name", "Cluster", "Username"}
	listStructuredLabels = []string{"current", "name", "cluster", "username"}
)

type contextCommand struct {
	*pcmd.CLICommand
	prerunner pcmd.PreRunner
}

type contextRow struct {
	Current  string
	Name     string
	Cluster  string
	Username string
}

// NewContext returns the Cobra contextCommand for `config context`.
func NewContext(prerunner pcmd.PreRunner) *cobra.Command {
	cliCmd := pcmd.NewAnonymousCLICommand(
		&cobra.Command{
			Use:   "context",
			Short: "Manage the Kafka Connect clusters kcctl knows about.",
		}, prerunner)
	cmd := &contextCommand{
		CLICommand: cliCmd,
		prerunner:  prerunner,
	}
	cmd.init()
	return cmd.Command
}

func (c *contextCommand) init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all contexts.",
		RunE:  pcmd.NewCLIRunE(c.list),
		Args:  cobra.NoArgs,
	}
	output.AddFlag(listCmd)
	c.AddCommand(listCmd)

	c.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the current context.",
		RunE:  pcmd.NewCLIRunE(c.current),
		Args:  cobra.NoArgs,
	})
	c.AddCommand(&cobra.Command{
		Use:   "use <name>",
		Short: "Make a context the current one.",
		RunE:  pcmd.NewCLIRunE(c.use),
		Args:  cobra.ExactArgs(1),
	})

	setCmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or replace a context.",
		Long: "Create or replace a context. Flags that are not given keep their current value when the context " +
			"already exists. The current context is not changed; use `kcctl config context use` for that.",
		RunE: pcmd.NewCLIRunE(c.set),
		Args: cobra.ExactArgs(1),
		Example: examples.BuildExampleString(
			examples.Example{
				Text: "Register a local worker and make it the current context.",
				Code: `
					kcctl config context set local --cluster http://localhost:8083
					kcctl config context use local
				`,
			},
			examples.Example{
				Text: "Register a worker that requires basic authentication.",
				Code: "kcctl config context set staging --cluster https://connect.staging:8083 --username admin --password secret",
			},
		),
	}
	setCmd.Flags().String("cluster", "", "URL of the Kafka Connect REST API.")
	setCmd.Flags().AddFlagSet(pcmd.CredentialsSet())
	setCmd.Flags().SortFlags = false
	c.AddCommand(setCmd)

	c.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a context.",
		RunE:  pcmd.NewCLIRunE(c.delete),
		Args:  cobra.ExactArgs(1),
	})
}

func (c *contextCommand) list(cmd *cobra.Command, _ []string) error {
	outputWriter, err := output.NewListOutputWriter(cmd, listFields, listHumanLabels, listStructuredLabels)
	if err != nil {
		return err
	}
	names := c.Config.ContextNames()
	if len(names) == 0 && outputWriter.GetOutputFormat() == output.Human {
		utils.Printf(cmd, errors.NoContextsDefinedMsg)
		return nil
	}
	for _, name := range names {
		context := c.Config.Contexts[name]
		current := ""
		if c.Config.CurrentContext == name {
			current = "*"
		}
		outputWriter.AddElement(&contextRow{
			Current:  current,
			Name:     name,
			Cluster:  context.Cluster,
			Username: context.Username,
		})
	}
	return outputWriter.Out()
}

func (c *contextCommand) current(cmd *cobra.Command, _ []string) error {
	context, err := c.Config.Current()
	if err != nil {
		return err
	}
	utils.Println(cmd, context.Name)
	return nil
}

func (c *contextCommand) use(cmd *cobra.Command, args []string) error {
	if err := c.Config.SetCurrentContext(args[0]); err != nil {
		return err
	}
	if err := c.Config.Save(); err != nil {
		return err
	}
	utils.Printf(cmd, errors.UsingContextMsg, args[0])
	return nil
}

func (c *contextCommand) set(cmd *cobra.Command, args []string) error {
	name := args[0]
	var cluster, username, password string
	if existing, ok := c.Config.Contexts[name]; ok {
		cluster, username, password = existing.Cluster, existing.Username, existing.Password
	}
	for flag, value := range map[string]*string{"cluster": &cluster, "username": &username, "password": &password} {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		v, err := cmd.Flags().GetString(flag)
		if err != nil {
			return err
		}
		*value = v
	}

	context, err := pconfig.NewContext(name, cluster, username, password)
	if err != nil {
		return err
	}
	if err := c.Config.AddOrReplaceContext(context); err != nil {
		return err
	}
	if err := c.Config.Save(); err != nil {
		return err
	}
	utils.Printf(cmd, errors.SetContextMsg, name, cluster)
	return nil
}

func (c *contextCommand) delete(cmd *cobra.Command, args []string) error {
	if err := c.Config.DeleteContext(args[0]); err != nil {
		return err
	}
	if err := c.Config.Save(); err != nil {
		return err
	}
	utils.Printf(cmd, errors.DeletedContextMsg, args[0])
	return nil
}
