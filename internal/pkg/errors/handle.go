package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const (
	suggestionsHeader     = "\nSuggestions:\n"
	suggestionsLineIndent = "    "
)

// HandleCommon runs on every error a RunE or PreRunE returns: usage is hidden for runtime
// failures and typed errors are rendered with their suggestions.
func HandleCommon(err error, cmd *cobra.Command) error {
	if err == nil {
		return nil
	}
	cmd.SilenceUsage = true
	return handleErrors(err)
}

func handleErrors(err error) error {
	return catchMultiErrors(catchTypedErrors(err))
}

// DisplaySuggestionsMessage writes the suggestions block of err, if it has one.
func DisplaySuggestionsMessage(err error, writer io.Writer) {
	var suggested ErrorWithSuggestions
	if err == nil || !As(err, &suggested) || suggested.GetSuggestionsMsg() == "" {
		return
	}
	_, _ = fmt.Fprint(writer, ComposeSuggestionsMessage(suggested.GetSuggestionsMsg()))
}

func ComposeSuggestionsMessage(msg string) string {
	var b strings.Builder
	b.WriteString(suggestionsHeader)
	for _, line := range strings.Split(msg, "\n") {
		b.WriteString(suggestionsLineIndent + line + "\n")
	}
	return b.String()
}
