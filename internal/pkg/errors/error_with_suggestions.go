package errors

// ErrorWithSuggestions is an error that also tells the user how to recover from it.
// main prints the suggestions block under the "Error:" line.
type ErrorWithSuggestions interface {
	error
	GetSuggestionsMsg() string
}

type suggestedError struct {
	msg         string
	suggestions string
	cause       error
}

func NewErrorWithSuggestions(errorMsg string, suggestionsMsg string) ErrorWithSuggestions {
	return &suggestedError{msg: errorMsg, suggestions: suggestionsMsg}
}

// NewWrapErrorWithSuggestions prefixes err's message with errorMsg. err stays reachable through As and Is.
func NewWrapErrorWithSuggestions(err error, errorMsg string, suggestionsMsg string) ErrorWithSuggestions {
	return &suggestedError{
		msg:         Wrap(err, errorMsg).Error(),
		suggestions: suggestionsMsg,
		cause:       err,
	}
}

func (e *suggestedError) Error() string {
	return e.msg
}

func (e *suggestedError) GetSuggestionsMsg() string {
	return e.suggestions
}

func (e *suggestedError) Unwrap() error {
	return e.cause
}

// withCause links a user-facing error back to the typed error it was rendered from.
func withCause(userErr error, cause error) error {
	if s, ok := userErr.(*suggestedError); ok && s.cause == nil {
		s.cause = cause
	}
	return userErr
}
