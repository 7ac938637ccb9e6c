package examples

import (
	"strings"

	"github.com/lithammer/dedent"
)

// Example is one usage shown under a command's help.
type Example struct {
	Text string
	Code string
}

// BuildExampleString renders each example as its description followed by the commands, one per line, prefixed with "$ ".
func BuildExampleString(examples ...Example) string {
	str := strings.Builder{}
	for i, e := range examples {
		if i > 0 {
			str.WriteString("\n")
		}
		if e.Text != "" {
			str.WriteString(e.Text + "\n\n")
		}
		str.WriteString(prompt(dedent.Dedent(e.Code)) + "\n")
	}
	return strings.TrimSuffix(str.String(), "\n")
}

func prompt(block string) string {
	var lines []string
	for _, line := range strings.Split(strings.Trim(block, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, "  $ "+line)
	}
	return strings.Join(lines, "\n")
}
