package examples

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildExampleString(t *testing.T) {
	got := BuildExampleString(
		Example{
			Text: "Apply a single file.",
			Code: "kcctl apply -f source.json",
		},
		Example{
			Code: `
				kcctl apply -f connectors/
				kcctl apply -f - < sink.json
			`,
		},
	)

	want := "Apply a single file.\n\n  $ kcctl apply -f source.json\n\n  $ kcctl apply -f connectors/\n  $ kcctl apply -f - < sink.json"
	require.Equal(t, want, got)
}

func TestPrompt(t *testing.T) {
	require.Equal(t, "  $ a\n  $ b", prompt("a\n\nb\n"))
}
