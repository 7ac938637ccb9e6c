// Package harness runs kcctl commands against a Kafka Connect cluster from tests.
package harness

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/log"
)

// DefaultContextName is the context every CommandContext registers its cluster under.
const DefaultContextName = "local"

// Cluster is a Kafka Connect endpoint a context can point at.
type Cluster interface {
	URL() string
}

// Output holds what the last command wrote to each stream.
type Output struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

func (o *Output) Reset() {
	o.Stdout.Reset()
	o.Stderr.Reset()
}

// CommandContext is the bundle handed to command tests: the cluster, the command under test and its output.
type CommandContext struct {
	Cluster    Cluster
	Command    *cobra.Command
	Output     *Output
	ConfigFile string

	t     testing.TB
	build func() *cobra.Command
}

// New writes a config file whose current context points at cluster and returns a CommandContext that runs the
// commands returned by build against it. build is called once per Execute so that flag state never leaks.
func New(t testing.TB, cluster Cluster, build func() *cobra.Command) *CommandContext {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "kcctl.json")
	cfg := config.New(&config.Params{Filename: filename, Logger: log.New()})
	local, err := config.NewContext(DefaultContextName, cluster.URL(), "", "")
	require.NoError(t, err)
	require.NoError(t, cfg.AddOrReplaceContext(local))
	require.NoError(t, cfg.SetCurrentContext(DefaultContextName))
	require.NoError(t, cfg.Save())

	return &CommandContext{
		Cluster:    cluster,
		Output:     &Output{},
		ConfigFile: filename,
		t:          t,
		build:      build,
	}
}

// AddContext registers another context in the config file without changing the current one.
func (c *CommandContext) AddContext(name, cluster, username, password string) {
	c.t.Helper()
	cfg := c.Config()
	added, err := config.NewContext(name, cluster, username, password)
	require.NoError(c.t, err)
	require.NoError(c.t, cfg.AddOrReplaceContext(added))
	require.NoError(c.t, cfg.Save())
}

// Config loads the config file as it is on disk now.
func (c *CommandContext) Config() *config.Config {
	c.t.Helper()
	cfg := config.New(&config.Params{Filename: c.ConfigFile, Logger: log.New()})
	require.NoError(c.t, cfg.Load())
	return cfg
}

// Execute runs a freshly built command with args against the config file. Output is reset first.
func (c *CommandContext) Execute(args ...string) error {
	return c.ExecuteWithInput(nil, args...)
}

// ExecuteWithInput is Execute with stdin served from in.
func (c *CommandContext) ExecuteWithInput(in *bytes.Buffer, args ...string) error {
	c.Output.Reset()
	c.Command = c.build()
	c.Command.SetOut(&c.Output.Stdout)
	c.Command.SetErr(&c.Output.Stderr)
	if in != nil {
		c.Command.SetIn(in)
	}
	c.Command.SetArgs(append(args, "--config", c.ConfigFile))
	return c.Command.ExecuteContext(context.Background())
}

func (c *CommandContext) Stdout() string {
	return c.Output.Stdout.String()
}

func (c *CommandContext) Stderr() string {
	return c.Output.Stderr.String()
}
