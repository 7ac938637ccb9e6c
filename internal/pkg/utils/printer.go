package utils

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//
// Results go to the command's stdout; per-document failures and reports go to its stderr,
// so that scripted callers can keep the two apart.
//

// Println writes its operands to stdout followed by a newline.
func Println(cmd *cobra.Command, args ...interface{}) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), args...)
}

// Printf formats according to a format specifier and writes to stdout.
func Printf(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// ErrPrintln writes its operands to stderr followed by a newline.
func ErrPrintln(cmd *cobra.Command, args ...interface{}) {
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), args...)
}

// ErrPrintf formats according to a format specifier and writes to stderr.
func ErrPrintf(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

// ErrPrintfHighlighted is ErrPrintf in bold red, unless color.NoColor is set.
func ErrPrintfHighlighted(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = color.New(color.FgRed, color.Bold).Fprintf(cmd.ErrOrStderr(), format, args...)
}
