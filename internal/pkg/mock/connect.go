package mock

import (
	"context"
	"sync"

	"github.com/kcctl/kcctl/internal/pkg/connect"
)

// Compile-time check interface adherence
var _ connect.Client = (*ConnectClient)(nil)

// ConnectClient is a connect.Client whose behaviour is set per method. Unset methods fail the call,
// and every call is recorded as "Method name".
type ConnectClient struct {
	WorkerInfoFunc         func(ctx context.Context) (*connect.WorkerInfo, error)
	ListConnectorsFunc     func(ctx context.Context) ([]string, error)
	ConnectorConfigFunc    func(ctx context.Context, name string) (connect.ConnectorConfig, error)
	ConnectorStatusFunc    func(ctx context.Context, name string) (*connect.ConnectorStatus, error)
	PutConnectorConfigFunc func(ctx context.Context, name string, config connect.ConnectorConfig) (*connect.PutResult, error)
	DeleteConnectorFunc    func(ctx context.Context, name string) error

	mu    sync.Mutex
	calls []string
}

func (m *ConnectClient) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns the recorded calls in the order they were made.
func (m *ConnectClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *ConnectClient) WorkerInfo(ctx context.Context) (*connect.WorkerInfo, error) {
	m.record("WorkerInfo")
	if m.WorkerInfoFunc == nil {
		return nil, errUnexpectedCall("WorkerInfo")
	}
	return m.WorkerInfoFunc(ctx)
}

func (m *ConnectClient) ListConnectors(ctx context.Context) ([]string, error) {
	m.record("ListConnectors")
	if m.ListConnectorsFunc == nil {
		return nil, errUnexpectedCall("ListConnectors")
	}
	return m.ListConnectorsFunc(ctx)
}

func (m *ConnectClient) ConnectorConfig(ctx context.Context, name string) (connect.ConnectorConfig, error) {
	m.record("ConnectorConfig " + name)
	if m.ConnectorConfigFunc == nil {
		return nil, errUnexpectedCall("ConnectorConfig")
	}
	return m.ConnectorConfigFunc(ctx, name)
}

func (m *ConnectClient) ConnectorStatus(ctx context.Context, name string) (*connect.ConnectorStatus, error) {
	m.record("ConnectorStatus " + name)
	if m.ConnectorStatusFunc == nil {
		return nil, errUnexpectedCall("ConnectorStatus")
	}
	return m.ConnectorStatusFunc(ctx, name)
}

func (m *ConnectClient) PutConnectorConfig(ctx context.Context, name string, config connect.ConnectorConfig) (*connect.PutResult, error) {
	m.record("PutConnectorConfig " + name)
	if m.PutConnectorConfigFunc == nil {
		return nil, errUnexpectedCall("PutConnectorConfig")
	}
	return m.PutConnectorConfigFunc(ctx, name, config)
}

func (m *ConnectClient) DeleteConnector(ctx context.Context, name string) error {
	m.record("DeleteConnector " + name)
	if m.DeleteConnectorFunc == nil {
		return errUnexpectedCall("DeleteConnector")
	}
	return m.DeleteConnectorFunc(ctx, name)
}
