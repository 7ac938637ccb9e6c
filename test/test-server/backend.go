package test_server

import (
	"net/http/httptest"
	"testing"
)

// TestBackend is a running fake Connect worker.
type TestBackend struct {
	Connect *ConnectRouter
	server  *httptest.Server
}

func StartTestBackend(t *testing.T) *TestBackend {
	router := NewConnectRouter(t)
	return &TestBackend{
		Connect: router,
		server:  httptest.NewServer(router),
	}
}

// StartTestBackendWithAuth starts a worker that insists on basic auth.
func StartTestBackendWithAuth(t *testing.T, username, password string) *TestBackend {
	backend := StartTestBackend(t)
	backend.Connect.RequireBasicAuth(username, password)
	return backend
}

func (b *TestBackend) Close() {
	if b.server != nil {
		b.server.Close()
	}
}

func (b *TestBackend) GetConnectUrl() string {
	return b.server.URL
}
