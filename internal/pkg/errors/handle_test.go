package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

var (
	wantSuggestionsMsgFormat = `
Suggestions:
    %s
`
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		wantErr bool
	}{
		{
			name:    "static message",
			err:     &NoContextError{CLIName: "kcctl"},
			want:    NoContextErrorMsg,
			wantErr: true,
		},
		{
			name:    "dynamic message",
			err:     &ContextNotFoundError{Name: "staging"},
			want:    fmt.Sprintf(ContextNotFoundErrorMsg, "staging"),
			wantErr: true,
		},
		{
			name:    "wrapped typed error",
			err:     Wrap(&ConnectorNotFoundError{Name: "sink"}, "describe"),
			want:    fmt.Sprintf(ConnectorNotFoundErrorMsg, "sink"),
			wantErr: true,
		},
		{
			name:    "batch summary",
			err:     &BatchApplyError{Failed: 1, Total: 3, Err: New("boom")},
			want:    fmt.Sprintf(BatchApplyErrorMsg, 1, 3),
			wantErr: true,
		},
		{
			name:    "single-entry multierror is unwrapped",
			err:     multierror.Append(nil, &ContextNotFoundError{Name: "dev"}),
			want:    fmt.Sprintf(ContextNotFoundErrorMsg, "dev"),
			wantErr: true,
		},
		{
			name:    "untyped error passes through",
			err:     New("plain"),
			want:    "plain",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			var err error
			if err = HandleCommon(tt.err, cmd); (err != nil) != tt.wantErr {
				t.Errorf("HandleCommon()\nerror: %v\nwantErr: %v", err, tt.wantErr)
			}
			if err.Error() != tt.want {
				t.Errorf("HandleCommon()\ngot: %s\nwant: %s", err, tt.want)
			}
			require.True(t, cmd.SilenceUsage)
		})
	}
}

func TestHandleCommonNil(t *testing.T) {
	cmd := &cobra.Command{}
	require.NoError(t, HandleCommon(nil, cmd))
	require.False(t, cmd.SilenceUsage)
}

func TestSuggestionsMessage(t *testing.T) {
	errorMessage := "im an error hi"
	suggestionsMessage := "This is a suggestion"
	err := NewErrorWithSuggestions(errorMessage, suggestionsMessage)
	var b bytes.Buffer
	DisplaySuggestionsMessage(err, &b)
	out := b.String()
	wantSuggestionsMsg := fmt.Sprintf(wantSuggestionsMsgFormat, suggestionsMessage)
	require.Equal(t, wantSuggestionsMsg, out)
}

func TestClusterUnreachableSuggestions(t *testing.T) {
	err := HandleCommon(&ClusterUnreachableError{URL: "http://localhost:8083", Err: New("connection refused")}, &cobra.Command{})
	VerifyErrorAndSuggestions(require.New(t), err,
		"unable to reach Kafka Connect cluster at http://localhost:8083: connection refused",
		fmt.Sprintf(ClusterUnreachableSuggestions, "http://localhost:8083"))
}

func TestNoContextErrorIs(t *testing.T) {
	require.True(t, Is(Wrap(&NoContextError{CLIName: "kcctl"}, "apply"), ErrNoContext))
}

func TestPredicates(t *testing.T) {
	require.True(t, IsNotFound(Wrap(&ConnectorNotFoundError{Name: "x"}, "get")))
	require.False(t, IsNotFound(&ServerError{StatusCode: 500}))
	require.True(t, IsClusterUnreachable(&ClusterUnreachableError{URL: "u", Err: New("timeout")}))
}

func TestServerErrorMessage(t *testing.T) {
	require.Equal(t, "Kafka Connect returned HTTP 500", (&ServerError{StatusCode: 500}).Error())
	require.Equal(t, "Kafka Connect returned HTTP 409: rebalance in progress",
		(&ServerError{StatusCode: 409, Message: "rebalance in progress"}).Error())
}

func TestHandleCommonKeepsTypedCause(t *testing.T) {
	err := HandleCommon(Wrap(&ConnectorNotFoundError{Name: "sink"}, "describe"), &cobra.Command{})

	var suggested ErrorWithSuggestions
	require.True(t, As(err, &suggested))
	require.True(t, IsNotFound(err))
}

func TestWrapErrorWithSuggestions(t *testing.T) {
	cause := &ServerError{StatusCode: 500}
	err := NewWrapErrorWithSuggestions(cause, "unable to list connectors", "Check the worker log.")
	require.Equal(t, "unable to list connectors: Kafka Connect returned HTTP 500", err.Error())
	require.Equal(t, "Check the worker log.", err.GetSuggestionsMsg())

	var serverErr *ServerError
	require.True(t, As(err, &serverErr))
}
