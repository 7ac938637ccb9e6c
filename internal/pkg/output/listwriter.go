package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/confluentinc/go-printer"
	"github.com/go-yaml/yaml"
	"github.com/tidwall/pretty"
)

// rows is the buffer both list writers collect into: one []string per element, in field order.
type rows [][]string

func (r rows) add(e interface{}, fields []string) rows {
	if row, ok := e.([]string); ok {
		return append(r, row)
	}
	v := reflect.Indirect(reflect.ValueOf(e))
	row := make([]string, len(fields))
	for i, field := range fields {
		row[i] = fmt.Sprintf("%v", v.FieldByName(field))
	}
	return append(r, row)
}

// sortStable orders rows by their first differing column.
func (r rows) sortStable() {
	sort.SliceStable(r, func(i, j int) bool {
		for x := range r[i] {
			if r[i][x] != r[j][x] {
				return r[i][x] < r[j][x]
			}
		}
		return false
	})
}

// HumanListWriter renders a table with go-printer. Elements are struct pointers whose fields are
// read by name, or ready-made []string rows.
type HumanListWriter struct {
	data   rows
	fields []string
	labels []string
	writer io.Writer
}

func (o *HumanListWriter) AddElement(e interface{}) {
	o.data = o.data.add(e, o.fields)
}

func (o *HumanListWriter) Out() error {
	printer.RenderCollectionTableOut(o.data, o.labels, o.writer)
	return nil
}

func (o *HumanListWriter) GetOutputFormat() Format {
	return Human
}

func (o *HumanListWriter) StableSort() {
	o.data.sortStable()
}

// StructuredListWriter renders a JSON or YAML list of objects keyed by the structured labels.
// YAML keys keep label order; JSON keys are sorted by encoding/json.
type StructuredListWriter struct {
	format Format
	data   rows
	fields []string
	labels []string
	writer io.Writer
}

func (o *StructuredListWriter) AddElement(e interface{}) {
	o.data = o.data.add(e, o.fields)
}

func (o *StructuredListWriter) Out() error {
	if len(o.data) == 0 {
		// valid as both JSON and YAML
		_, err := fmt.Fprint(o.writer, "[]\n")
		return err
	}
	var out []byte
	var err error
	if o.format == YAML {
		out, err = yaml.Marshal(o.yamlItems())
	} else {
		out, err = json.Marshal(o.jsonItems())
		out = pretty.Pretty(out)
	}
	if err != nil {
		return err
	}
	_, err = o.writer.Write(out)
	return err
}

func (o *StructuredListWriter) jsonItems() []map[string]string {
	items := make([]map[string]string, len(o.data))
	for i, row := range o.data {
		items[i] = make(map[string]string, len(o.labels))
		for x, label := range o.labels {
			items[i][label] = row[x]
		}
	}
	return items
}

func (o *StructuredListWriter) yamlItems() []yaml.MapSlice {
	items := make([]yaml.MapSlice, len(o.data))
	for i, row := range o.data {
		for x, label := range o.labels {
			items[i] = append(items[i], yaml.MapItem{Key: label, Value: row[x]})
		}
	}
	return items
}

func (o *StructuredListWriter) GetOutputFormat() Format {
	return o.format
}

func (o *StructuredListWriter) StableSort() {
	o.data.sortStable()
}
