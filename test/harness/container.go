//go:build integration

package harness

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	kafkaImage  = "apache/kafka:3.7.0"
	kafkaAlias  = "kafka"
	connectPort = "8083/tcp"
)

const kafkaConnectProperties = `bootstrap.servers=kafka:9092
group.id=kcctl-it
key.converter=org.apache.kafka.connect.json.JsonConverter
value.converter=org.apache.kafka.connect.json.JsonConverter
config.storage.topic=kcctl-configs
offset.storage.topic=kcctl-offsets
status.storage.topic=kcctl-status
config.storage.replication.factor=1
offset.storage.replication.factor=1
status.storage.replication.factor=1
listeners=http://0.0.0.0:8083
plugin.path=/tmp/plugins
`

// ContainerCluster is a single-broker Kafka with one Kafka Connect worker, both in containers.
type ContainerCluster struct {
	url        string
	containers []testcontainers.Container
	network    *testcontainers.DockerNetwork
}

// StartContainerCluster starts the containers, or reuses the worker at KCCTL_IT_CLUSTER when it is set.
// The containers are terminated when the test ends.
func StartContainerCluster(t *testing.T) *ContainerCluster {
	t.Helper()
	if url := os.Getenv("KCCTL_IT_CLUSTER"); url != "" {
		return &ContainerCluster{url: url}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cluster := &ContainerCluster{}
	t.Cleanup(cluster.terminate)

	nw, err := network.New(ctx)
	if err != nil {
		t.Fatalf("failed to create network: %v", err)
	}
	cluster.network = nw

	kafka, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          kafkaImage,
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {kafkaAlias}},
			Env: map[string]string{
				"KAFKA_NODE_ID":                                  "1",
				"KAFKA_PROCESS_ROLES":                            "broker,controller",
				"KAFKA_LISTENERS":                                "PLAINTEXT://:9092,CONTROLLER://:9093",
				"KAFKA_ADVERTISED_LISTENERS":                     "PLAINTEXT://kafka:9092",
				"KAFKA_CONTROLLER_LISTENER_NAMES":                "CONTROLLER",
				"KAFKA_LISTENER_SECURITY_PROTOCOL_MAP":           "CONTROLLER:PLAINTEXT,PLAINTEXT:PLAINTEXT",
				"KAFKA_CONTROLLER_QUORUM_VOTERS":                 "1@kafka:9093",
				"KAFKA_OFFSETS_TOPIC_REPLICATION_FACTOR":         "1",
				"KAFKA_TRANSACTION_STATE_LOG_REPLICATION_FACTOR": "1",
				"KAFKA_TRANSACTION_STATE_LOG_MIN_ISR":            "1",
			},
			WaitingFor: wait.ForLog("Kafka Server started").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start kafka container: %v", err)
	}
	cluster.containers = append(cluster.containers, kafka)

	// The file connectors ship with Kafka but are no longer on the worker's default plugin path.
	script := strings.Join([]string{
		"mkdir -p /tmp/plugins",
		"cp /opt/kafka/libs/connect-file-*.jar /tmp/plugins/",
		"exec /opt/kafka/bin/connect-distributed.sh /tmp/connect-distributed.properties",
	}, " && ")
	connect, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        kafkaImage,
			Networks:     []string{nw.Name},
			ExposedPorts: []string{connectPort},
			Entrypoint:   []string{"sh", "-c"},
			Cmd:          []string{script},
			Files: []testcontainers.ContainerFile{{
				Reader:            strings.NewReader(kafkaConnectProperties),
				ContainerFilePath: "/tmp/connect-distributed.properties",
				FileMode:          0o644,
			}},
			WaitingFor: wait.ForHTTP("/connectors").
				WithPort(connectPort).
				WithStartupTimeout(3 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start connect container: %v", err)
	}
	cluster.containers = append(cluster.containers, connect)

	host, err := connect.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := connect.MappedPort(ctx, connectPort)
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	cluster.url = fmt.Sprintf("http://%s:%s", host, port.Port())
	return cluster
}

func (c *ContainerCluster) URL() string {
	return c.url
}

func (c *ContainerCluster) terminate() {
	ctx := context.Background()
	for i := len(c.containers) - 1; i >= 0; i-- {
		_ = c.containers[i].Terminate(ctx)
	}
	if c.network != nil {
		_ = c.network.Remove(ctx)
	}
}
