package test_server

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// connect worker urls
const (
	workerRoot      = "/"
	connectors      = "/connectors"
	connector       = "/connectors/{connector}"
	connectorConfig = "/connectors/{connector}/config"
	connectorStatus = "/connectors/{connector}/status"
)

const (
	WorkerVersion        = "3.6.1"
	WorkerCommit         = "5e3c2b738d253ff5"
	WorkerKafkaClusterID = "Ju8vRN3eQy-1OM0bvUnpbg"
	workerID             = "connect:8083"
)

// ConnectRouter is an in-memory Kafka Connect worker. Connectors written through PUT are kept,
// so a second PUT with the same name is answered as an update.
type ConnectRouter struct {
	*mux.Router
	username string
	password string

	mu         sync.Mutex
	connectors map[string]map[string]string
	requests   []string
}

func NewConnectRouter(t *testing.T) *ConnectRouter {
	router := NewEmptyConnectRouter()
	router.buildConnectHandler(t)
	return router
}

func NewEmptyConnectRouter() *ConnectRouter {
	return &ConnectRouter{
		Router:     mux.NewRouter(),
		connectors: map[string]map[string]string{},
	}
}

// RequireBasicAuth makes every route answer 401 unless the request carries these credentials.
func (c *ConnectRouter) RequireBasicAuth(username, password string) {
	c.username = username
	c.password = password
}

func (c *ConnectRouter) buildConnectHandler(t *testing.T) {
	c.Use(c.recordRequest, c.checkAuth)
	c.HandleFunc(workerRoot, c.HandleWorkerInfo(t)).Methods(http.MethodGet)
	c.HandleFunc(connectors, c.HandleListConnectors(t)).Methods(http.MethodGet)
	c.HandleFunc(connectorConfig, c.HandleGetConnectorConfig(t)).Methods(http.MethodGet)
	c.HandleFunc(connectorConfig, c.HandlePutConnectorConfig(t)).Methods(http.MethodPut)
	c.HandleFunc(connectorStatus, c.HandleConnectorStatus(t)).Methods(http.MethodGet)
	c.HandleFunc(connector, c.HandleDeleteConnector(t)).Methods(http.MethodDelete)
	c.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(t, w, http.StatusNotFound, "HTTP 404 Not Found")
	})
}

func (c *ConnectRouter) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.requests = append(c.requests, r.Method+" "+r.URL.Path)
		c.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (c *ConnectRouter) checkAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.username != "" {
			username, password, ok := r.BasicAuth()
			if !ok || username != c.username || password != c.password {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"error_code":401,"message":"User cannot access the resource."}`)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Requests lists "METHOD /path" for every request received so far.
func (c *ConnectRouter) Requests() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.requests...)
}

// SetConnector seeds a connector without going through the REST API.
func (c *ConnectRouter) SetConnector(name string, config map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectors[name] = copyConfig(config)
}

// Connector returns the stored configuration of name, or nil.
func (c *ConnectRouter) Connector(name string) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	config, ok := c.connectors[name]
	if !ok {
		return nil
	}
	return copyConfig(config)
}

// DeleteAllConnectors resets the worker between test cases.
func (c *ConnectRouter) DeleteAllConnectors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectors = map[string]map[string]string{}
	c.requests = nil
}

func (c *ConnectRouter) connectorNames() []string {
	names := make([]string, 0, len(c.connectors))
	for name := range c.connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func copyConfig(config map[string]string) map[string]string {
	out := make(map[string]string, len(config))
	for k, v := range config {
		out[k] = v
	}
	return out
}

func writeError(t *testing.T, w http.ResponseWriter, status int, message string) {
	writeJSON(t, w, status, map[string]interface{}{
		"error_code": status,
		"message":    message,
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	require.NoError(t, json.NewEncoder(w).Encode(body))
}
