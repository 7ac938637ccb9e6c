package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/version"
)

// PreRunner is a helper class for automatically setting up Cobra PersistentPreRun commands
type PreRunner interface {
	Anonymous(command *CLICommand) func(cmd *cobra.Command, args []string) error
	HasContext(command *ContextCLICommand) func(cmd *cobra.Command, args []string) error
}

// ClientFactory builds the client used to talk to the cluster of a context.
type ClientFactory func(params *connect.Params) (connect.Client, error)

// PreRun is the standard PreRunner implementation
type PreRun struct {
	CLIName   string
	Version   *version.Version
	Logger    *log.Logger
	Config    *config.Config
	NewClient ClientFactory
}

// CLICommand is a command that only needs the local config.
type CLICommand struct {
	*cobra.Command
	Config    *config.Config
	Version   *version.Version
	prerunner PreRunner
}

// ContextCLICommand is a command that talks to the Kafka Connect cluster of the resolved context.
type ContextCLICommand struct {
	*CLICommand
	Context *config.Context
	Client  connect.Client
}

func NewAnonymousCLICommand(command *cobra.Command, prerunner PreRunner) *CLICommand {
	cmd := &CLICommand{
		Command:   command,
		prerunner: prerunner,
	}
	command.PersistentPreRunE = NewCLIPreRunnerE(prerunner.Anonymous(cmd))
	return cmd
}

func NewContextCLICommand(command *cobra.Command, prerunner PreRunner) *ContextCLICommand {
	cmd := &ContextCLICommand{
		CLICommand: &CLICommand{
			Command:   command,
			prerunner: prerunner,
		},
	}
	command.PersistentPreRunE = NewCLIPreRunnerE(prerunner.HasContext(cmd))
	return cmd
}

// Anonymous provides PreRun operations for commands that only read or write the local config
func (r *PreRun) Anonymous(command *CLICommand) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := log.SetLoggingVerbosity(cmd, r.Logger); err != nil {
			return err
		}
		r.Logger.Flush()
		if filename := viper.GetString("config"); filename != "" {
			r.Config.Filename = filename
		}
		if err := r.Config.Load(); err != nil {
			return err
		}
		command.Config = r.Config
		command.Version = r.Version
		return nil
	}
}

// HasContext provides PreRun operations for commands that need a Kafka Connect cluster.
// The context is taken from --context, then KCCTL_CONTEXT, then the config's current context.
func (r *PreRun) HasContext(command *ContextCLICommand) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := r.Anonymous(command.CLICommand)(cmd, args); err != nil {
			return err
		}
		context, err := r.Config.ResolveContext(viper.GetString("context"))
		if err != nil {
			return err
		}
		r.Logger.Debugf("Using context %s at %s", context.Name, context.Cluster)
		client, err := r.newClient(context)
		if err != nil {
			return &errors.InvalidContextError{Name: context.Name, Reason: err.Error()}
		}
		command.Context = context
		command.Client = client
		return nil
	}
}

func (r *PreRun) newClient(context *config.Context) (connect.Client, error) {
	params := &connect.Params{
		URL:     context.Cluster,
		Timeout: viper.GetDuration("timeout"),
		Logger:  r.Logger,
	}
	if context.HasCredentials() {
		params.Username = context.Username
		params.Password = context.Password
	}
	if r.Version != nil {
		params.UserAgent = r.Version.UserAgent
	}
	if r.NewClient != nil {
		return r.NewClient(params)
	}
	return connect.NewRESTClient(params)
}
