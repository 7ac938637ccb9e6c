package apply

import (
	"github.com/hashicorp/go-multierror"

	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
)

// Result is the slot of one document in a batch. Exactly one of Outcome and Err is set.
type Result struct {
	Source  string
	Name    string
	Outcome *Outcome
	Err     error
}

// Failed reports whether the document was not applied, including when the cluster rejected it.
func (r Result) Failed() bool {
	return r.Err != nil || (r.Outcome != nil && r.Outcome.Kind == ValidationFailed)
}

func (r Result) error() error {
	if r.Err != nil {
		return errors.Wrapf(r.Err, "%s", r.Source)
	}
	if r.Outcome != nil && r.Outcome.Kind == ValidationFailed {
		return &connect.ValidationError{Connector: r.Outcome.Name, Errors: r.Outcome.Errors}
	}
	return nil
}

type Results []Result

func (rs Results) Failed() int {
	failed := 0
	for _, r := range rs {
		if r.Failed() {
			failed++
		}
	}
	return failed
}

// Err is nil when every document was applied, and a *errors.BatchApplyError otherwise.
func (rs Results) Err() error {
	var result *multierror.Error
	for _, r := range rs {
		if err := r.error(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result == nil {
		return nil
	}
	return &errors.BatchApplyError{Failed: len(result.Errors), Total: len(rs), Err: result.ErrorOrNil()}
}
