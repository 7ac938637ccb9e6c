package config

import (
	"fmt"
	"net/url"

	"github.com/kcctl/kcctl/internal/pkg/errors"
)

// Context is one named Kafka Connect cluster endpoint with optional basic auth credentials.
type Context struct {
	Name     string `json:"-"`
	Cluster  string `json:"cluster"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

func NewContext(name, cluster, username, password string) (*Context, error) {
	context := &Context{
		Name:     name,
		Cluster:  cluster,
		Username: username,
		Password: password,
	}
	if err := context.validate(); err != nil {
		return nil, err
	}
	return context, nil
}

// HasCredentials reports whether requests against this cluster carry basic auth.
func (c *Context) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

func (c *Context) validate() error {
	switch c.Name {
	case "":
		return &errors.InvalidContextError{Name: c.Name, Reason: errors.EmptyContextNameReason}
	case currentContextKey:
		return &errors.InvalidContextError{Name: c.Name, Reason: errors.ReservedContextNameReason}
	}
	if c.Cluster == "" {
		return &errors.InvalidContextError{Name: c.Name, Reason: errors.MissingClusterURLReason}
	}
	u, err := url.Parse(c.Cluster)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &errors.InvalidContextError{Name: c.Name, Reason: fmt.Sprintf(errors.InvalidClusterURLReason, c.Cluster)}
	}
	if (c.Username == "") != (c.Password == "") {
		return &errors.InvalidContextError{Name: c.Name, Reason: errors.UnpairedCredentialsReason}
	}
	return nil
}
