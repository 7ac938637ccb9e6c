package mock

import (
	"context"
	"sync"

	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
)

func errUnexpectedCall(method string) error {
	return errors.Errorf("unexpected call to %s", method)
}

// NewInMemoryConnectClient returns a ConnectClient backed by a map, answering PUTs like a worker that
// accepts every configuration.
func NewInMemoryConnectClient() *ConnectClient {
	var mu sync.Mutex
	connectors := map[string]connect.ConnectorConfig{}
	return &ConnectClient{
		PutConnectorConfigFunc: func(_ context.Context, name string, config connect.ConnectorConfig) (*connect.PutResult, error) {
			mu.Lock()
			defer mu.Unlock()
			_, exists := connectors[name]
			connectors[name] = config
			return &connect.PutResult{Created: !exists, Info: connect.ConnectorInfo{Name: name, Config: config}}, nil
		},
		ConnectorConfigFunc: func(_ context.Context, name string) (connect.ConnectorConfig, error) {
			mu.Lock()
			defer mu.Unlock()
			config, ok := connectors[name]
			if !ok {
				return nil, &errors.ConnectorNotFoundError{Name: name}
			}
			return config, nil
		},
		DeleteConnectorFunc: func(_ context.Context, name string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := connectors[name]; !ok {
				return &errors.ConnectorNotFoundError{Name: name}
			}
			delete(connectors, name)
			return nil
		},
	}
}
