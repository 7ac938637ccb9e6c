package harness

import (
	"testing"

	testserver "github.com/kcctl/kcctl/test/test-server"
)

// FakeCluster is an in-process Kafka Connect worker.
type FakeCluster struct {
	*testserver.TestBackend
}

// StartFakeCluster starts a fake worker that is closed when the test ends.
func StartFakeCluster(t *testing.T) *FakeCluster {
	backend := testserver.StartTestBackend(t)
	t.Cleanup(backend.Close)
	return &FakeCluster{TestBackend: backend}
}

func (c *FakeCluster) URL() string {
	return c.GetConnectUrl()
}
