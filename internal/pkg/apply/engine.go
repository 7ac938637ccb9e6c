// Package apply reconciles connector configurations against a Kafka Connect cluster.
package apply

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
)

type OutcomeKind int

const (
	Created OutcomeKind = iota
	Updated
	ValidationFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case ValidationFailed:
		return "validation failed"
	}
	return "unknown"
}

// Outcome is what happened to one connector configuration that reached the cluster.
type Outcome struct {
	Kind   OutcomeKind
	Name   string
	Errors []connect.FieldError
}

type DeleteOutcome int

const (
	Deleted DeleteOutcome = iota
	Absent
)

// Engine applies configurations through a connect.Client. It holds no state between calls.
type Engine struct {
	client      connect.Client
	logger      *log.Logger
	parallelism int
}

func NewEngine(client connect.Client, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New()
	}
	return &Engine{
		client:      client,
		logger:      logger.Named("apply"),
		parallelism: 1,
	}
}

// WithParallelism bounds how many documents ApplyAll sends to the cluster at once.
func (e *Engine) WithParallelism(n int) (*Engine, error) {
	if n < 1 {
		return nil, errors.Errorf(errors.InvalidParallelismErrorMsg, n)
	}
	clone := *e
	clone.parallelism = n
	return &clone, nil
}

// Apply creates or updates the connector described by config with a single PUT.
// Configurations without a name or connector class are rejected before any request is made.
func (e *Engine) Apply(ctx context.Context, config connect.ConnectorConfig) (*Outcome, error) {
	return e.apply(ctx, "", config)
}

func (e *Engine) apply(ctx context.Context, source string, config connect.ConnectorConfig) (*Outcome, error) {
	name := config.Name()
	if name == "" {
		return nil, &errors.MissingConnectorNameError{Source: source}
	}
	if config.Class() == "" {
		return nil, &errors.MissingConnectorClassError{Name: name}
	}

	e.logger.Debugf("Applying connector %s", name)
	result, err := e.client.PutConnectorConfig(ctx, name, config)
	if err != nil {
		var validationErr *connect.ValidationError
		if errors.As(err, &validationErr) {
			e.logger.Debugf("Connector %s rejected with %d error(s)", name, len(validationErr.Errors))
			return &Outcome{Kind: ValidationFailed, Name: name, Errors: validationErr.Errors}, nil
		}
		return nil, err
	}
	if result.Created {
		return &Outcome{Kind: Created, Name: name}, nil
	}
	return &Outcome{Kind: Updated, Name: name}, nil
}

// ApplyDocument applies one loaded document. A document that failed to load is reported without contacting the cluster.
func (e *Engine) ApplyDocument(ctx context.Context, doc Document) Result {
	result := Result{Source: doc.Source}
	if doc.Err != nil {
		result.Err = doc.Err
		return result
	}
	result.Name = doc.Config.Name()
	result.Outcome, result.Err = e.apply(ctx, doc.Source, doc.Config)
	return result
}

// ApplyAll applies every document, independently of the others, and returns one result per document in input order.
func (e *Engine) ApplyAll(ctx context.Context, docs []Document) Results {
	results := make(Results, len(docs))
	g := new(errgroup.Group)
	g.SetLimit(e.parallelism)
	for i := range docs {
		i := i
		g.Go(func() error {
			results[i] = e.ApplyDocument(ctx, docs[i])
			return nil
		})
	}
	_ = g.Wait()
	e.logger.Debugf("Applied %d document(s), %d failed", len(results), results.Failed())
	return results
}

// Delete removes a connector. A connector that does not exist is reported as Absent, not as an error.
func (e *Engine) Delete(ctx context.Context, name string) (DeleteOutcome, error) {
	if name == "" {
		return Absent, &errors.MissingConnectorNameError{}
	}
	if err := e.client.DeleteConnector(ctx, name); err != nil {
		if errors.IsNotFound(err) {
			return Absent, nil
		}
		return Absent, err
	}
	return Deleted, nil
}
