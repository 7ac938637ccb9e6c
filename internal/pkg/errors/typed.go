package errors

import (
	"fmt"
)

type CLITypedError interface {
	error
	UserFacingError() error
}

// CorruptedConfigError means the context store document could not be parsed or failed validation.
type CorruptedConfigError struct {
	Path string
	Err  error
}

func NewCorruptedConfigError(path string, err error) *CorruptedConfigError {
	return &CorruptedConfigError{Path: path, Err: err}
}

func (e *CorruptedConfigError) Error() string {
	return fmt.Sprintf(CorruptedConfigErrorMsg, e.Path, e.Err)
}

func (e *CorruptedConfigError) Unwrap() error {
	return e.Err
}

func (e *CorruptedConfigError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), fmt.Sprintf(CorruptedConfigSuggestions, e.Path))
}

// ContextNotFoundError reports an unknown context name. Current marks the stored current context.
type ContextNotFoundError struct {
	Name    string
	Current bool
}

func (e *ContextNotFoundError) Error() string {
	if e.Current {
		return fmt.Sprintf(CurrentContextNotFoundMsg, e.Name)
	}
	return fmt.Sprintf(ContextNotFoundErrorMsg, e.Name)
}

func (e *ContextNotFoundError) UserFacingError() error {
	if e.Current {
		return NewErrorWithSuggestions(e.Error(), CurrentContextSuggestions)
	}
	return NewErrorWithSuggestions(e.Error(), ContextNotFoundSuggestions)
}

type NoContextError struct {
	CLIName string
}

func (e *NoContextError) Error() string {
	return NoContextErrorMsg
}

func (e *NoContextError) Is(target error) bool {
	return target == ErrNoContext
}

func (e *NoContextError) UserFacingError() error {
	return NewErrorWithSuggestions(NoContextErrorMsg, fmt.Sprintf(NoContextSuggestions, e.CLIName, e.CLIName))
}

// InvalidContextError is returned when a context definition breaks one of the store's rules.
type InvalidContextError struct {
	Name   string
	Reason string
}

func (e *InvalidContextError) Error() string {
	return fmt.Sprintf(InvalidContextErrorMsg, e.Name, e.Reason)
}

func (e *InvalidContextError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), InvalidContextSuggestions)
}

type MissingConnectorNameError struct {
	Source string
}

func (e *MissingConnectorNameError) Error() string {
	if e.Source == "" {
		return MissingConnectorNameNoSourceErrorMsg
	}
	return fmt.Sprintf(MissingConnectorNameErrorMsg, e.Source)
}

func (e *MissingConnectorNameError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), MissingConnectorNameSuggestions)
}

type MissingConnectorClassError struct {
	Name string
}

func (e *MissingConnectorClassError) Error() string {
	return fmt.Sprintf(MissingConnectorClassErrorMsg, e.Name)
}

func (e *MissingConnectorClassError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), MissingConnectorClassSuggestions)
}

// ClusterUnreachableError covers transport failures, including timeouts and cancellation.
type ClusterUnreachableError struct {
	URL string
	Err error
}

func (e *ClusterUnreachableError) Error() string {
	return fmt.Sprintf(ClusterUnreachableErrorMsg, e.URL, e.Err)
}

func (e *ClusterUnreachableError) Unwrap() error {
	return e.Err
}

func (e *ClusterUnreachableError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), fmt.Sprintf(ClusterUnreachableSuggestions, e.URL))
}

// ServerError is any unexpected response from the Connect worker.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf(ServerErrorNoMessageMsg, e.StatusCode)
	}
	return fmt.Sprintf(ServerErrorMsg, e.StatusCode, e.Message)
}

type ConnectorNotFoundError struct {
	Name string
}

func (e *ConnectorNotFoundError) Error() string {
	return fmt.Sprintf(ConnectorNotFoundErrorMsg, e.Name)
}

func (e *ConnectorNotFoundError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), ConnectorNotFoundSuggestions)
}

// BatchApplyError summarizes a batch apply in which at least one document failed.
// The per-document details have already been reported by the time it is returned.
type BatchApplyError struct {
	Failed int
	Total  int
	Err    error
}

func (e *BatchApplyError) Error() string {
	return fmt.Sprintf(BatchApplyErrorMsg, e.Failed, e.Total)
}

func (e *BatchApplyError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var e *ConnectorNotFoundError
	return As(err, &e)
}

func IsClusterUnreachable(err error) bool {
	var e *ClusterUnreachableError
	return As(err, &e)
}
