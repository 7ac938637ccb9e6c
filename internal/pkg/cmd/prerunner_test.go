package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/mock"
)

type clientRecorder struct {
	params  *connect.Params
	command *ContextCLICommand
}

func writeConfig(t *testing.T, current string, contexts ...*config.Context) string {
	filename := filepath.Join(t.TempDir(), "kcctl.json")
	cfg := config.New(&config.Params{Filename: filename, Logger: log.New()})
	for _, context := range contexts {
		require.NoError(t, cfg.AddOrReplaceContext(context))
	}
	if current != "" {
		require.NoError(t, cfg.SetCurrentContext(current))
	}
	require.NoError(t, cfg.Save())
	return filename
}

func newContext(t *testing.T, name, cluster, username, password string) *config.Context {
	context, err := config.NewContext(name, cluster, username, password)
	require.NoError(t, err)
	return context
}

func newRecordingRoot(t *testing.T) (*cobra.Command, *clientRecorder) {
	p := &clientRecorder{}
	prerunner := &PreRun{
		CLIName: "kcctl",
		Version: mock.NewVersionMock(),
		Logger:  log.New(),
		Config:  config.New(&config.Params{Logger: log.New()}),
		NewClient: func(params *connect.Params) (connect.Client, error) {
			p.params = params
			return &mock.ConnectClient{}, nil
		},
	}
	root := BuildRootCommand()
	p.command = NewContextCLICommand(&cobra.Command{
		Use:  "ping",
		RunE: func(*cobra.Command, []string) error { return nil },
	}, prerunner)
	root.AddCommand(p.command.Command)
	return root, p
}

func TestHasContextUsesCurrentContext(t *testing.T) {
	filename := writeConfig(t, "local",
		newContext(t, "local", "http://localhost:8083", "", ""),
		newContext(t, "staging", "http://staging:8083", "admin", "secret"))
	t.Setenv("KCCTL_CONTEXT", "")
	root, p := newRecordingRoot(t)

	_, err := ExecuteCommand(root, "ping", "--config", filename)
	require.NoError(t, err)
	require.Equal(t, "local", p.command.Context.Name)
	require.Equal(t, "http://localhost:8083", p.params.URL)
	require.Empty(t, p.params.Username)
	require.Equal(t, connect.DefaultTimeout, p.params.Timeout)
	require.Equal(t, "mock-user", p.params.UserAgent)
	require.NotNil(t, p.command.Client)
	require.NotNil(t, p.command.Config)
}

func TestHasContextPrecedence(t *testing.T) {
	filename := writeConfig(t, "local",
		newContext(t, "local", "http://localhost:8083", "", ""),
		newContext(t, "staging", "http://staging:8083", "admin", "secret"),
		newContext(t, "prod", "https://prod:8083", "", ""))

	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{name: "stored current context", want: "local"},
		{name: "environment overrides current", env: "staging", want: "staging"},
		{name: "flag overrides environment", env: "staging", args: []string{"--context", "prod"}, want: "prod"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KCCTL_CONTEXT", tt.env)
			root, p := newRecordingRoot(t)
			args := append([]string{"ping", "--config", filename}, tt.args...)
			_, err := ExecuteCommand(root, args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, p.command.Context.Name)
		})
	}
}

func TestHasContextPassesCredentialsAndTimeout(t *testing.T) {
	filename := writeConfig(t, "staging", newContext(t, "staging", "http://staging:8083", "admin", "secret"))
	t.Setenv("KCCTL_CONTEXT", "")
	root, p := newRecordingRoot(t)

	_, err := ExecuteCommand(root, "ping", "--config", filename, "--timeout", "3s")
	require.NoError(t, err)
	require.Equal(t, "admin", p.params.Username)
	require.Equal(t, "secret", p.params.Password)
	require.Equal(t, 3*time.Second, p.params.Timeout)
}

func TestHasContextWithoutCredentials(t *testing.T) {
	filename := writeConfig(t, "local", newContext(t, "local", "http://localhost:8083", "", ""))
	t.Setenv("KCCTL_CONTEXT", "")
	root, rec := newRecordingRoot(t)

	_, err := ExecuteCommand(root, "ping", "--config", filename)
	require.NoError(t, err)
	require.Empty(t, rec.params.Username)
	require.Empty(t, rec.params.Password)
}

func TestHasContextConfigFromEnvironment(t *testing.T) {
	filename := writeConfig(t, "local", newContext(t, "local", "http://localhost:8083", "", ""))
	t.Setenv("KCCTL_CONTEXT", "")
	t.Setenv("KCCTL_CONFIG", filename)
	root, p := newRecordingRoot(t)

	_, err := ExecuteCommand(root, "ping")
	require.NoError(t, err)
	require.Equal(t, "local", p.command.Context.Name)
}

func TestHasContextErrors(t *testing.T) {
	t.Setenv("KCCTL_CONTEXT", "")

	t.Run("unknown context", func(t *testing.T) {
		filename := writeConfig(t, "local", newContext(t, "local", "http://localhost:8083", "", ""))
		root, p := newRecordingRoot(t)
		_, err := ExecuteCommand(root, "ping", "--config", filename, "--context", "nope")
		require.Error(t, err)
		errors.VerifyErrorAndSuggestions(require.New(t), err, `context "nope" does not exist`, errors.ContextNotFoundSuggestions)
		require.Nil(t, p.params)
	})

	t.Run("no current context", func(t *testing.T) {
		filename := writeConfig(t, "", newContext(t, "local", "http://localhost:8083", "", ""))
		root, p := newRecordingRoot(t)
		_, err := ExecuteCommand(root, "ping", "--config", filename)
		require.Error(t, err)
		require.Equal(t, errors.NoContextErrorMsg, err.Error())
		require.Nil(t, p.params)
	})

	t.Run("missing config file", func(t *testing.T) {
		root, _ := newRecordingRoot(t)
		_, err := ExecuteCommand(root, "ping", "--config", filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		require.Equal(t, errors.NoContextErrorMsg, err.Error())
	})
}

func TestAnonymousDoesNotNeedContext(t *testing.T) {
	prerunner := &PreRun{
		CLIName: "kcctl",
		Logger:  log.New(),
		Config:  config.New(&config.Params{Logger: log.New()}),
	}
	root := BuildRootCommand()
	var seen *config.Config
	command := NewAnonymousCLICommand(&cobra.Command{Use: "anon"}, prerunner)
	command.RunE = func(*cobra.Command, []string) error {
		seen = command.Config
		return nil
	}
	root.AddCommand(command.Command)

	_, err := ExecuteCommand(root, "anon", "--config", filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.NotNil(t, seen)
	require.Empty(t, seen.Contexts)
}
