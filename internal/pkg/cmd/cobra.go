package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kcctl/kcctl/internal/pkg/errors"
)

func NewCLIRunE(runEFunc func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return errors.HandleCommon(runEFunc(cmd, args), cmd)
	}
}

func NewCLIPreRunnerE(prerunnerE func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return errors.HandleCommon(prerunnerE(cmd, args), cmd)
	}
}

// Context returns the context the command was executed with.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
