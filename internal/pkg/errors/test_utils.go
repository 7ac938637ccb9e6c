package errors

import (
	"bytes"

	"github.com/stretchr/testify/require"
)

// VerifyErrorAndSuggestions asserts on err exactly as main would print it to stderr.
func VerifyErrorAndSuggestions(req *require.Assertions, err error, wantMsg string, wantSuggestions string) {
	req.Error(err)
	req.Equal("Error: "+wantMsg+"\n"+ComposeSuggestionsMessage(wantSuggestions), RenderError(err))
}

// RenderError is the "Error:" line followed by the suggestions block, if err carries one.
func RenderError(err error) string {
	var suggestions bytes.Buffer
	DisplaySuggestionsMessage(err, &suggestions)
	return "Error: " + err.Error() + "\n" + suggestions.String()
}
