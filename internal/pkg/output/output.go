package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/confluentinc/go-printer"
	"github.com/go-yaml/yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/utils"
)

const (
	humanString   = "human"
	jsonString    = "json"
	yamlString    = "yaml"
	FlagName      = "output"
	ShortHandFlag = "o"
	Usage         = `Specify the output format as "human", "json", or "yaml".`
	DefaultValue  = humanString
)

var (
	allFormatStrings = []string{humanString, jsonString, yamlString}
)

type Format int

const (
	Human Format = iota
	JSON
	YAML
)

func (o Format) String() string {
	return allFormatStrings[o]
}

type ListOutputWriter interface {
	AddElement(e interface{})
	Out() error
	GetOutputFormat() Format
	StableSort()
}

// AddFlag registers --output on cmd.
func AddFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(FlagName, ShortHandFlag, DefaultValue, Usage)
}

// GetFormat reads and checks --output.
func GetFormat(cmd *cobra.Command) (Format, error) {
	format, err := cmd.Flags().GetString(FlagName)
	if err != nil {
		return Human, err
	}
	if !utils.Contains(allFormatStrings, format) {
		return Human, newInvalidOutputFormatFlagError(format)
	}
	switch format {
	case jsonString:
		return JSON, nil
	case yamlString:
		return YAML, nil
	}
	return Human, nil
}

func NewListOutputWriter(cmd *cobra.Command, listFields []string, humanLabels []string, structuredLabels []string) (ListOutputWriter, error) {
	return NewListOutputCustomizableWriter(cmd, listFields, humanLabels, structuredLabels, cmd.OutOrStdout())
}

func NewListOutputCustomizableWriter(cmd *cobra.Command, listFields []string, humanLabels []string, structuredLabels []string, writer io.Writer) (ListOutputWriter, error) {
	format, err := GetFormat(cmd)
	if err != nil {
		return nil, err
	}
	if format == Human {
		return &HumanListWriter{fields: listFields, labels: humanLabels, writer: writer}, nil
	}
	return &StructuredListWriter{format: format, fields: listFields, labels: structuredLabels, writer: writer}, nil
}

// DescribeObject prints the given fields of obj, as a two-column table for human output.
func DescribeObject(cmd *cobra.Command, obj interface{}, fields []string, humanRenames, structuredRenames map[string]string) error {
	format, err := GetFormat(cmd)
	if err != nil {
		return err
	}
	return printer.RenderOut(obj, fields, humanRenames, structuredRenames, format.String(), cmd.OutOrStdout())
}

// StructuredOutput prints obj as indented JSON or YAML.
func StructuredOutput(w io.Writer, format Format, obj interface{}) error {
	var b []byte
	var err error
	switch format {
	case JSON:
		b, err = json.Marshal(obj)
		b = pretty.Pretty(b)
	case YAML:
		b, err = yaml.Marshal(obj)
	default:
		return newInvalidOutputFormatFlagError(format.String())
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(b))
	return err
}

func newInvalidOutputFormatFlagError(format string) error {
	errorMsg := fmt.Sprintf(errors.InvalidFlagValueErrorMsg, format, FlagName)
	suggestionsMsg := fmt.Sprintf(errors.InvalidFlagValueSuggestions, FlagName, strings.Join(allFormatStrings, ", "))
	return errors.NewErrorWithSuggestions(errorMsg, suggestionsMsg)
}
