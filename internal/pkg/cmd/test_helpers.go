package cmd

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs the root command with the given args, and returns the output string or an error.
func ExecuteCommand(root *cobra.Command, args ...string) (output string, err error) {
	if args == nil {
		args = []string{}
	}
	_, output, _, err = ExecuteCommandC(root, args...)
	return output, err
}

// ExecuteCommandWithStderr is ExecuteCommand that also returns what the command wrote to stderr.
func ExecuteCommandWithStderr(root *cobra.Command, args ...string) (output string, stderr string, err error) {
	if args == nil {
		args = []string{}
	}
	_, output, stderr, err = ExecuteCommandC(root, args...)
	return output, stderr, err
}

// ExecuteCommandC runs the root command with the given args, and returns the executed command, its stdout and stderr, or an error.
func ExecuteCommandC(root *cobra.Command, args ...string) (c *cobra.Command, output string, stderr string, err error) {
	buf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(errBuf)
	root.SetArgs(args)

	c, err = root.ExecuteContextC(context.Background())

	return c, buf.String(), errBuf.String(), err
}

// BuildRootCommand creates a new root command for testing, carrying the global flags.
func BuildRootCommand() *cobra.Command {
	root := &cobra.Command{Use: "kcctl", SilenceErrors: true}
	root.PersistentFlags().AddFlagSet(GlobalSet())
	if err := BindGlobalFlags(root); err != nil {
		panic(err)
	}
	return root
}
