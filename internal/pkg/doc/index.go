package doc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// GenMarkdownTree writes one page per command below dir, plus an index.md per command group.
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	cmd.DisableAutoGenTag = true
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := doc.GenMarkdownTree(cmd, dir); err != nil {
		return err
	}
	return genIndexes(cmd, dir)
}

func genIndexes(cmd *cobra.Command, dir string) error {
	if !cmd.HasAvailableSubCommands() {
		return nil
	}
	filename := filepath.Join(dir, strings.ReplaceAll(cmd.CommandPath(), " ", "_")+"_index.md")
	if err := GenMarkdownIndex(cmd, filename); err != nil {
		return err
	}
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		c.DisableAutoGenTag = true
		if err := genIndexes(c, dir); err != nil {
			return err
		}
	}
	return nil
}

// GenMarkdownIndex writes a table of the direct subcommands of cmd to filename.
func GenMarkdownIndex(cmd *cobra.Command, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeIndex(f, cmd)
}

func writeIndex(w io.Writer, cmd *cobra.Command) error {
	if _, err := io.WriteString(w, indexHeader(cmd)); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	table := tablewriter.NewWriter(buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeader([]string{"Command", "Description"})
	for _, c := range subcommands(cmd) {
		table.Append([]string{c.link(), c.description})
	}
	table.Render()

	_, err := io.WriteString(w, dedent.Dedent(buf.String()))
	return err
}

type command struct {
	path        string
	description string
}

func (c command) link() string {
	return fmt.Sprintf("[%s](%s.md)", c.path, strings.ReplaceAll(c.path, " ", "_"))
}

func subcommands(cmd *cobra.Command) []command {
	var commands []command
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		commands = append(commands, command{path: c.CommandPath(), description: c.Short})
	}
	return commands
}

func indexHeader(cmd *cobra.Command) string {
	buf := new(bytes.Buffer)
	name := cmd.CommandPath()
	buf.WriteString(fmt.Sprintf("# %s\n\n", name))
	desc := cmd.Short
	if cmd.Long != "" {
		desc = cmd.Long
	}
	buf.WriteString(desc + "\n\n")
	return buf.String()
}
