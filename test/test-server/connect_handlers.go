package test_server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

const validateEndpointHint = "You can also find the above list of errors at the endpoint `/connector-plugins/{connectorType}/config/validate`"

// Handler for: "/"
func (c *ConnectRouter) HandleWorkerInfo(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{
			"version":          WorkerVersion,
			"commit":           WorkerCommit,
			"kafka_cluster_id": WorkerKafkaClusterID,
		})
	}
}

// Handler for: "/connectors"
func (c *ConnectRouter) HandleListConnectors(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		names := c.connectorNames()
		c.mu.Unlock()
		writeJSON(t, w, http.StatusOK, names)
	}
}

// Handler for: GET "/connectors/{connector}/config"
func (c *ConnectRouter) HandleGetConnectorConfig(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["connector"]
		config := c.Connector(name)
		if config == nil {
			writeError(t, w, http.StatusNotFound, fmt.Sprintf("Connector %s not found", name))
			return
		}
		writeJSON(t, w, http.StatusOK, config)
	}
}

// Handler for: PUT "/connectors/{connector}/config"
// Mirrors the worker's checks that matter to kcctl: a connector class must be given, the name in the body must
// match the URL and tasks.max must be an integer.
func (c *ConnectRouter) HandlePutConnectorConfig(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["connector"]
		config := map[string]string{}
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			writeError(t, w, http.StatusInternalServerError, "Cannot deserialize value of type `java.util.HashMap`")
			return
		}
		if bodyName, ok := config["name"]; ok && bodyName != name {
			writeError(t, w, http.StatusBadRequest, fmt.Sprintf("Connector name configuration (%s) doesn't match connector name in the URL (%s)", bodyName, name))
			return
		}
		if config["connector.class"] == "" {
			writeError(t, w, http.StatusBadRequest, fmt.Sprintf("Connector config %v contains no connector type", config))
			return
		}
		if errs := validateConfig(config); len(errs) > 0 {
			message := fmt.Sprintf("Connector configuration is invalid and contains the following %d error(s):\n%s\n%s",
				len(errs), strings.Join(errs, "\n"), validateEndpointHint)
			writeError(t, w, http.StatusBadRequest, message)
			return
		}
		config["name"] = name

		c.mu.Lock()
		_, exists := c.connectors[name]
		c.connectors[name] = config
		c.mu.Unlock()

		status := http.StatusCreated
		if exists {
			status = http.StatusOK
		}
		writeJSON(t, w, status, map[string]interface{}{
			"name":   name,
			"config": config,
			"tasks":  []map[string]interface{}{{"connector": name, "task": 0}},
			"type":   connectorType(config),
		})
	}
}

// Handler for: "/connectors/{connector}/status"
func (c *ConnectRouter) HandleConnectorStatus(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["connector"]
		config := c.Connector(name)
		if config == nil {
			writeError(t, w, http.StatusNotFound, fmt.Sprintf("No status found for connector %s", name))
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"name":      name,
			"connector": map[string]string{"state": "RUNNING", "worker_id": workerID},
			"tasks":     []map[string]interface{}{{"id": 0, "state": "RUNNING", "worker_id": workerID}},
			"type":      connectorType(config),
		})
	}
}

// Handler for: DELETE "/connectors/{connector}"
func (c *ConnectRouter) HandleDeleteConnector(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["connector"]
		c.mu.Lock()
		_, exists := c.connectors[name]
		delete(c.connectors, name)
		c.mu.Unlock()
		if !exists {
			writeError(t, w, http.StatusNotFound, fmt.Sprintf("Connector %s not found", name))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func validateConfig(config map[string]string) []string {
	var errs []string
	if tasksMax, ok := config["tasks.max"]; ok {
		if _, err := strconv.Atoi(tasksMax); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid value %s for configuration tasks.max: Not a number of type INT", tasksMax))
		}
	}
	return errs
}

func connectorType(config map[string]string) string {
	if strings.Contains(strings.ToLower(config["connector.class"]), "sink") {
		return "sink"
	}
	return "source"
}
