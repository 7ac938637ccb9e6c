//go:build integration

package harness_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kcctl/kcctl/internal/cmd"
	"github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/mock"
	"github.com/kcctl/kcctl/test/harness"
)

const localFileSource = `{
  "name": "local-file-source",
  "connector.class": "FileStreamSource",
  "tasks.max": "1",
  "file": "/tmp/test.txt",
  "topic": "connect-test"
}`

func TestLocalFileSourceAgainstWorker(t *testing.T) {
	req := require.New(t)
	cluster := harness.StartContainerCluster(t)
	cc := harness.New(t, cluster, func() *cobra.Command {
		logger := log.New()
		cli, err := cmd.NewKcctlCommand(config.New(&config.Params{Logger: logger}), mock.NewVersionMock(), logger)
		require.NoError(t, err)
		return cli
	})

	source := filepath.Join(t.TempDir(), "local-file-source.json")
	req.NoError(os.WriteFile(source, []byte(localFileSource), 0o644))

	req.NoError(cc.Execute("info"))
	req.Contains(cc.Stdout(), cluster.URL())

	// A second run against the same worker may find the connector left by the first.
	_ = cc.Execute("connector", "delete", "local-file-source")

	req.NoError(cc.Execute("apply", "-f", source))
	req.Equal("Created connector local-file-source\n", cc.Stdout())

	req.NoError(cc.Execute("apply", "-f", source))
	req.Equal("Updated connector local-file-source\n", cc.Stdout())

	req.NoError(cc.Execute("connector", "describe", "local-file-source", "-o", "json"))
	req.Contains(cc.Stdout(), `"connector.class": "FileStreamSource"`)

	req.NoError(cc.Execute("connector", "delete", "local-file-source"))
	req.Equal("Deleted connector local-file-source\n", cc.Stdout())
}
