package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/atrox/homedir"

	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
)

const (
	defaultConfigFile = "~/.kcctl"
	currentContextKey = "currentContext"
)

// Params decide where a Config is read from and who it reports to.
type Params struct {
	CLIName  string
	Filename string
	Logger   *log.Logger
}

// Config is the set of named Kafka Connect clusters known to kcctl, plus the one currently selected.
type Config struct {
	*Params
	Contexts       map[string]*Context
	CurrentContext string
}

// New initializes an empty Config.
func New(params *Params) *Config {
	if params == nil {
		params = &Params{}
	}
	if params.CLIName == "" {
		params.CLIName = "kcctl"
	}
	if params.Logger == nil {
		params.Logger = log.New()
	}
	return &Config{
		Params:   params,
		Contexts: map[string]*Context{},
	}
}

// Load reads the config from disk.
// A missing or blank file is an empty store.
func (c *Config) Load() error {
	filename, err := c.getFilename()
	if err != nil {
		return err
	}
	c.Contexts = map[string]*Context{}
	c.CurrentContext = ""

	input, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			c.Logger.Debugf("No config file at %s, starting without contexts", filename)
			return nil
		}
		return errors.Wrapf(err, errors.UnableToLoadConfigErrorMsg, filename)
	}
	if len(bytes.TrimSpace(input)) == 0 {
		c.Logger.Debugf("Config file %s is empty", filename)
		return nil
	}
	if err := json.Unmarshal(input, c); err != nil {
		c.Logger.Debugf("%+v", err)
		return errors.NewCorruptedConfigError(filename, err)
	}
	c.Logger.Tracef("Loaded %d context(s) from %s", len(c.Contexts), filename)
	return nil
}

// Save atomically replaces the config file with the current state.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}
	cfg, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "unable to marshal config")
	}
	filename, err := c.getFilename()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return errors.Wrapf(err, "unable to create config directory: %s", filename)
	}
	if err := writeFileAtomic(filename, append(cfg, '\n'), 0600); err != nil {
		return errors.Wrapf(err, errors.UnableToSaveConfigErrorMsg, filename)
	}
	c.Logger.Debugf("Saved %d context(s) to %s", len(c.Contexts), filename)
	return nil
}

// Validate checks every context and that the current context, if any, is defined.
func (c *Config) Validate() error {
	if c.CurrentContext != "" {
		if _, ok := c.Contexts[c.CurrentContext]; !ok {
			c.Logger.Trace("current context does not exist")
			return &errors.ContextNotFoundError{Name: c.CurrentContext, Current: true}
		}
	}
	for name, context := range c.Contexts {
		if context.Name != name {
			return &errors.InvalidContextError{Name: name, Reason: fmt.Sprintf("stored under a different name \"%s\"", context.Name)}
		}
		if err := context.validate(); err != nil {
			c.Logger.Trace("context validation error")
			return err
		}
	}
	return nil
}

// Context returns the current context, or nil if none is set or it cannot be resolved.
func (c *Config) Context() *Context {
	return c.Contexts[c.CurrentContext]
}

// Current resolves the current context.
func (c *Config) Current() (*Context, error) {
	if c.CurrentContext == "" {
		return nil, &errors.NoContextError{CLIName: c.CLIName}
	}
	context, ok := c.Contexts[c.CurrentContext]
	if !ok {
		return nil, &errors.ContextNotFoundError{Name: c.CurrentContext, Current: true}
	}
	return context, nil
}

// ResolveContext returns the named context when override is set, and the current context otherwise.
func (c *Config) ResolveContext(override string) (*Context, error) {
	if override != "" {
		return c.FindContext(override)
	}
	return c.Current()
}

// FindContext finds a context by name.
func (c *Config) FindContext(name string) (*Context, error) {
	context, ok := c.Contexts[name]
	if !ok {
		return nil, &errors.ContextNotFoundError{Name: name}
	}
	return context, nil
}

// AddOrReplaceContext stores context under its name. The current context is left alone.
func (c *Config) AddOrReplaceContext(context *Context) error {
	if err := context.validate(); err != nil {
		return err
	}
	c.Contexts[context.Name] = context
	return nil
}

// SetCurrentContext selects name as the current context. Nothing changes if it does not exist.
func (c *Config) SetCurrentContext(name string) error {
	if _, err := c.FindContext(name); err != nil {
		return err
	}
	c.CurrentContext = name
	return nil
}

// DeleteContext deletes the specified context, and returns an error if it's not found.
func (c *Config) DeleteContext(name string) error {
	if _, err := c.FindContext(name); err != nil {
		return err
	}
	delete(c.Contexts, name)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return nil
}

// ContextNames returns the names of all contexts in lexical order.
func (c *Config) ContextNames() []string {
	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path is the absolute location of the config file.
func (c *Config) Path() (string, error) {
	return c.getFilename()
}

func (c *Config) getFilename() (string, error) {
	if c.Filename == "" {
		c.Filename = defaultConfigFile
	}
	filename, err := homedir.Expand(c.Filename)
	if err != nil {
		c.Logger.Error(err)
		// Return a more user-friendly error.
		err = fmt.Errorf("an error resolving the config filepath at %s has occurred. "+
			"Please try moving the file to a different location", c.Filename)
		return "", err
	}
	return filename, nil
}
