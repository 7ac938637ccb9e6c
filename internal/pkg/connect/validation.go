package connect

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	invalidConfigHeader   = "Connector configuration is invalid and contains the following"
	validateEndpointTrail = "You can also find the above list of errors at the endpoint"
)

var (
	invalidValuePattern    = regexp.MustCompile(`^Invalid value (.*) for configuration ([^\s:]+): (.*)$`)
	missingRequiredPattern = regexp.MustCompile(`^Missing required configuration "([^"]+)" which has no default value\.?$`)
)

// parseFieldErrors reads the problems out of a 400 body. Two shapes are understood: the response of
// PUT /connector-plugins/{type}/config/validate, which lists errors per property, and the error body of
// PUT /connectors/{name}/config, which carries the same list flattened into its message.
func parseFieldErrors(body []byte) []FieldError {
	if !gjson.ValidBytes(body) {
		return nil
	}
	parsed := gjson.ParseBytes(body)

	var fieldErrors []FieldError
	parsed.Get("configs").ForEach(func(_, config gjson.Result) bool {
		property := config.Get("value.name").String()
		config.Get("value.errors").ForEach(func(_, message gjson.Result) bool {
			fieldErrors = append(fieldErrors, FieldError{Property: property, Message: message.String()})
			return true
		})
		return true
	})
	if len(fieldErrors) > 0 {
		return fieldErrors
	}
	return parseValidationMessage(parsed.Get("message").String())
}

func parseValidationMessage(message string) []FieldError {
	if !strings.HasPrefix(message, invalidConfigHeader) {
		return nil
	}
	lines := strings.Split(message, "\n")
	var fieldErrors []FieldError
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, validateEndpointTrail) {
			continue
		}
		fieldErrors = append(fieldErrors, parseValidationLine(line))
	}
	return fieldErrors
}

func parseValidationLine(line string) FieldError {
	if m := invalidValuePattern.FindStringSubmatch(line); m != nil {
		return FieldError{Property: m[2], Message: m[3]}
	}
	if m := missingRequiredPattern.FindStringSubmatch(line); m != nil {
		return FieldError{Property: m[1], Message: line}
	}
	return FieldError{Message: line}
}
