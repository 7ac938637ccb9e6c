package connect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []FieldError
	}{
		{
			name: "put error message",
			body: `{"error_code":400,"message":"Connector configuration is invalid and contains the following 2 error(s):\nInvalid value abc for configuration tasks.max: Not a number of type INT\nMissing required configuration \"topic\" which has no default value.\nYou can also find the above list of errors at the endpoint ` + "`/connector-plugins/{connectorType}/config/validate`" + `"}`,
			want: []FieldError{
				{Property: "tasks.max", Message: "Not a number of type INT"},
				{Property: "topic", Message: `Missing required configuration "topic" which has no default value.`},
			},
		},
		{
			name: "unattributed line",
			body: `{"error_code":400,"message":"Connector configuration is invalid and contains the following 1 error(s):\nSomething odd happened\n"}`,
			want: []FieldError{{Message: "Something odd happened"}},
		},
		{
			name: "validate response",
			body: `{"name":"FileStreamSource","error_count":1,"groups":["Common"],"configs":[
				{"definition":{"name":"tasks.max"},"value":{"name":"tasks.max","value":"abc","errors":["Invalid value abc for configuration tasks.max: Not a number of type INT"]}},
				{"definition":{"name":"topic"},"value":{"name":"topic","value":"t","errors":[]}}]}`,
			want: []FieldError{{Property: "tasks.max", Message: "Invalid value abc for configuration tasks.max: Not a number of type INT"}},
		},
		{
			name: "unrelated message",
			body: `{"error_code":400,"message":"Connector config {} contains no connector type"}`,
		},
		{
			name: "not json",
			body: `Bad Request`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseFieldErrors([]byte(tt.body)))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	require.Equal(t, "Connector x not found", errorMessage([]byte(`{"error_code":404,"message":"Connector x not found"}`)))
	require.Equal(t, "Bad Gateway", errorMessage([]byte("Bad Gateway\n")))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Connector: "c", Errors: []FieldError{{Property: "tasks.max", Message: "Not a number"}, {Message: "general"}}}
	require.Equal(t, "configuration of connector c is invalid: tasks.max: Not a number; general", err.Error())
}
