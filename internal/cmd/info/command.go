package info

import (
	"github.com/spf13/cobra"

	pcmd "github.com/kcctl/kcctl/internal/pkg/cmd"
	"github.com/kcctl/kcctl/internal/pkg/output"
)

type command struct {
	*pcmd.ContextCLICommand
}

type workerDisplay struct {
	URL            string
	Version        string
	Commit         string
	KafkaClusterID string
}

var (
	describeFields            = []string{"URL", "Version", "Commit", "KafkaClusterID"}
	describeHumanRenames      = map[string]string{"KafkaClusterID": "Kafka Cluster ID"}
	describeStructuredRenames = map[string]string{"URL": "url", "Version": "version", "Commit": "commit", "KafkaClusterID": "kafka_cluster_id"}
)

// New returns the Cobra command for `info`.
func New(prerunner pcmd.PreRunner) *cobra.Command {
	cliCmd := pcmd.NewContextCLICommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show the Kafka Connect worker of the current context.",
			Args:  cobra.NoArgs,
		}, prerunner)
	cmd := &command{ContextCLICommand: cliCmd}
	cmd.RunE = pcmd.NewCLIRunE(cmd.info)
	output.AddFlag(cmd.Command)
	return cmd.Command
}

func (c *command) info(cmd *cobra.Command, _ []string) error {
	worker, err := c.Client.WorkerInfo(pcmd.Context(cmd))
	if err != nil {
		return err
	}
	return output.DescribeObject(cmd, &workerDisplay{
		URL:            c.Context.Cluster,
		Version:        worker.Version,
		Commit:         worker.Commit,
		KafkaClusterID: worker.KafkaClusterID,
	}, describeFields, describeHumanRenames, describeStructuredRenames)
}
