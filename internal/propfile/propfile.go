// Package propfile loads YAML property files: named scalar values with
// optional EDM type annotations, the input format of the table-codec
// CLI.
package propfile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"table-codec/edm"
)

// File is a parsed property file.
type File struct {
	Version    string     `yaml:"version"`
	Properties []Property `yaml:"properties"`
}

// Property is one named, typed value.
type Property struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value any    `yaml:"value"`

	// Tag is the resolved form of Type, filled in during parsing.
	Tag edm.TypeEnum `yaml:"-"`
}

// LoadFile loads and parses a YAML property file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File, resolving every property's type
// annotation. A missing annotation resolves to Edm.String; an unknown
// one fails with the codec's invalid-type error.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse property YAML: %w", err)
	}

	// Apply defaults and normalize
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Properties {
		p := &f.Properties[i]

		tag, err := edm.ParseType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}

		value, err := checkScalar(p.Value)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}

		p.Tag = tag
		p.Value = value
	}

	return &f, nil
}

// checkScalar rejects YAML structures; only the codec's native scalar
// shapes may appear as property values.
func checkScalar(value any) (any, error) {
	switch value.(type) {
	default:
		return nil, fmt.Errorf("unsupported value shape %T", value)
	case nil, string, int, int64, float64, bool, time.Time, []byte:
		return value, nil
	}
}
