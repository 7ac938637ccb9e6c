package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kcctl/kcctl/internal/pkg/errors"
)

// The persisted document is flat: "currentContext" next to one object per context name.
//
//	{
//	  "currentContext": "local",
//	  "local": {"cluster": "http://localhost:8083", "username": "u", "password": "p"}
//	}
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "currentContext": {"type": "string"}
  },
  "additionalProperties": {
    "type": "object",
    "properties": {
      "cluster": {"type": "string"},
      "username": {"type": "string"},
      "password": {"type": "string"}
    },
    "required": ["cluster"]
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeEntry := func(key string, value interface{}) error {
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}
	if c.CurrentContext != "" {
		if err := writeEntry(currentContextKey, c.CurrentContext); err != nil {
			return nil, err
		}
	}
	for _, name := range c.ContextNames() {
		if err := writeEntry(name, c.Contexts[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Config) UnmarshalJSON(data []byte) error {
	if err := validateDocument(data); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	contexts := map[string]*Context{}
	current := ""
	for key, value := range raw {
		if key == currentContextKey {
			if err := json.Unmarshal(value, &current); err != nil {
				return err
			}
			continue
		}
		context := &Context{}
		if err := json.Unmarshal(value, context); err != nil {
			return err
		}
		context.Name = key
		if err := context.validate(); err != nil {
			return err
		}
		contexts[key] = context
	}
	c.Contexts = contexts
	c.CurrentContext = current
	return nil
}

func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	var violations []string
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return errors.Errorf(errors.ConfigSchemaViolationMsg, strings.Join(violations, "; "))
}
