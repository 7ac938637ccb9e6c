package apply

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/confluentinc/properties"
	"github.com/tidwall/gjson"

	"github.com/kcctl/kcctl/internal/pkg/connect"
	"github.com/kcctl/kcctl/internal/pkg/errors"
)

// StdinSource is the path that reads a JSON document from stdin.
const StdinSource = "-"

// Document is one configuration to apply, or the reason it could not be read.
type Document struct {
	Source string
	Config connect.ConnectorConfig
	Err    error
}

// LoadDocuments expands paths into documents. Directories contribute their *.json and *.properties files in lexical
// order. Problems with a single document are kept on that document.
func LoadDocuments(paths []string, stdin io.Reader) ([]Document, error) {
	if len(paths) == 0 {
		return nil, errors.NewErrorWithSuggestions(errors.NoConfigFilesErrorMsg, errors.NoConfigFilesSuggestions)
	}
	var docs []Document
	for _, path := range paths {
		if path == StdinSource {
			docs = append(docs, loadReader(StdinSource, stdin))
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			docs = append(docs, Document{Source: path, Err: errors.Wrapf(err, errors.UnreadableConfigFileErrorMsg, path)})
			continue
		}
		if !info.IsDir() {
			docs = append(docs, loadFile(path))
			continue
		}
		files, err := configFiles(path)
		if err != nil {
			docs = append(docs, Document{Source: path, Err: errors.Wrapf(err, errors.UnreadableConfigFileErrorMsg, path)})
			continue
		}
		for _, file := range files {
			docs = append(docs, loadFile(file))
		}
	}
	return docs, nil
}

func configFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".properties":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func loadFile(path string) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{Source: path, Err: errors.Wrapf(err, errors.UnreadableConfigFileErrorMsg, path)}
	}
	var config connect.ConnectorConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".properties":
		config, err = ParseProperties(path, data)
	default:
		config, err = ParseJSON(path, data)
	}
	return Document{Source: path, Config: config, Err: err}
}

func loadReader(source string, r io.Reader) Document {
	if r == nil {
		return Document{Source: source, Err: errors.Errorf(errors.EmptyConfigFileErrorMsg, source)}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{Source: source, Err: errors.Wrapf(err, errors.UnreadableConfigFileErrorMsg, source)}
	}
	config, err := ParseJSON(source, data)
	return Document{Source: source, Config: config, Err: err}
}

// ParseJSON reads either a flat property object or the {"name": ..., "config": {...}} form accepted by POST /connectors.
// Numbers and booleans are turned into their literal text; nested values are rejected.
func ParseJSON(source string, data []byte) (connect.ConnectorConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Errorf(errors.EmptyConfigFileErrorMsg, source)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf(errors.MalformedConfigFileErrorMsg, source)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Errorf(errors.MalformedConfigFileErrorMsg, source)
	}
	body := root
	wrapped := root.Get("config")
	if wrapped.IsObject() {
		body = wrapped
	}

	config := connect.ConnectorConfig{}
	var err error
	body.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.String:
			config[key.String()] = value.String()
		case gjson.Number:
			config[key.String()] = value.Raw
		case gjson.True, gjson.False:
			config[key.String()] = value.Raw
		default:
			err = errors.Errorf(errors.NestedConfigValueErrorMsg, source, key.String())
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if wrapped.IsObject() {
		if name := root.Get(connect.NameProperty); name.Type == gjson.String {
			config[connect.NameProperty] = name.String()
		}
	}
	return config, nil
}

// ParseProperties reads a Java properties document. ${...} placeholders are kept as written, since they are meant
// for the worker's config providers.
func ParseProperties(source string, data []byte) (connect.ConnectorConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Errorf(errors.EmptyConfigFileErrorMsg, source)
	}
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.UnreadableConfigFileErrorMsg, source)
	}
	return connect.ConnectorConfig(props.Map()), nil
}
