package connect

import (
	"fmt"
	"sort"
	"strings"
)

// ConnectorConfig is the flat property map of a single connector. It always carries "name" and "connector.class"
// once it has been accepted by the apply engine.
type ConnectorConfig map[string]string

const (
	NameProperty           = "name"
	ConnectorClassProperty = "connector.class"
	TasksMaxProperty       = "tasks.max"
)

func (c ConnectorConfig) Name() string {
	return c[NameProperty]
}

func (c ConnectorConfig) Class() string {
	return c[ConnectorClassProperty]
}

// Keys returns the property names in lexical order.
func (c ConnectorConfig) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WorkerInfo is the body of GET / on a Connect worker.
type WorkerInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	KafkaClusterID string `json:"kafka_cluster_id"`
}

type TaskID struct {
	Connector string `json:"connector"`
	Task      int    `json:"task"`
}

// ConnectorInfo is returned by the worker after a connector config has been written.
type ConnectorInfo struct {
	Name   string          `json:"name"`
	Config ConnectorConfig `json:"config"`
	Tasks  []TaskID        `json:"tasks"`
	Type   string          `json:"type"`
}

// PutResult tells whether PUT /connectors/{name}/config created the connector or updated an existing one.
type PutResult struct {
	Created bool
	Info    ConnectorInfo
}

type ConnectorState struct {
	State    string `json:"state"`
	WorkerID string `json:"worker_id"`
	Trace    string `json:"trace,omitempty"`
}

type TaskState struct {
	ID       int    `json:"id"`
	State    string `json:"state"`
	WorkerID string `json:"worker_id"`
	Trace    string `json:"trace,omitempty"`
}

type ConnectorStatus struct {
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Connector ConnectorState `json:"connector"`
	Tasks     []TaskState    `json:"tasks"`
}

// FieldError is one problem reported by the worker while validating a configuration.
// Property is empty when the worker did not attribute the problem to a single property.
type FieldError struct {
	Property string `json:"property,omitempty"`
	Message  string `json:"message"`
}

func (e FieldError) String() string {
	if e.Property == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Property, e.Message)
}

// ValidationError is returned when the worker rejects a configuration with a structured list of problems.
type ValidationError struct {
	Connector string
	Errors    []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fieldErr := range e.Errors {
		msgs[i] = fieldErr.String()
	}
	return fmt.Sprintf("configuration of connector %s is invalid: %s", e.Connector, strings.Join(msgs, "; "))
}
