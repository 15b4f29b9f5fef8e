// Package options holds the settings of the generator that a project keeps in
// a bitenum.yaml file next to its go.mod.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"bitenum-generator/internal/analyze"
	"bitenum-generator/internal/gen"
)

// DefaultFile is the name of the options file looked up in the working
// directory.
const DefaultFile = "bitenum.yaml"

// Options are the generator settings.
type Options struct {
	// Runtime is the import path of the bounded integer package.
	Runtime string `yaml:"runtime,omitempty"`
	// Suffix is appended to the snake-cased type name to form file names.
	Suffix string `yaml:"suffix,omitempty"`
	// DefinitionTag is the build tag of definition files.
	DefinitionTag string `yaml:"definitionTag,omitempty"`
	// Comments enables doc comments on generated functions; default true.
	Comments *bool `yaml:"comments,omitempty"`
	// Workers bounds the number of concurrent expansions; 0 uses GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
	// Types restricts generation to the named types.
	Types []string `yaml:"types,omitempty"`
}

// Default returns the options used when no file is given.
func Default() *Options {
	var o Options
	applyDefaults(&o)

	return &o
}

// LoadFile loads and parses a YAML options file from the given path.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOptional loads path if it exists and returns Default otherwise.
func LoadOptional(path string) (*Options, error) {
	o, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return o, err
}

// Parse parses YAML data into Options.
func Parse(data []byte) (*Options, error) {
	var o Options

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&o)

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &o, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(o *Options) {
	if o.Runtime == "" {
		o.Runtime = gen.DefaultRuntime
	}

	if o.Suffix == "" {
		o.Suffix = gen.DefaultGeneratorConfig().Suffix
	}

	if o.DefinitionTag == "" {
		o.DefinitionTag = analyze.DefaultDefinitionTag
	}

	if o.Comments == nil {
		comments := true
		o.Comments = &comments
	}
}

// Validate checks the options for values the generator cannot use.
func (o *Options) Validate() error {
	var errs []error

	if strings.ContainsAny(o.Suffix, `/\`) || !strings.HasPrefix(o.Suffix, "_") {
		errs = append(errs, fmt.Errorf("suffix %q must start with '_' and must not contain path separators", o.Suffix))
	}

	if strings.HasSuffix(o.Suffix, "_test") {
		errs = append(errs, fmt.Errorf("suffix %q would produce test files", o.Suffix))
	}

	if strings.ContainsAny(o.DefinitionTag, " \t!&|()") {
		errs = append(errs, fmt.Errorf("definition tag %q must be a single build tag", o.DefinitionTag))
	}

	if o.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", o.Workers))
	}

	return errors.Join(errs...)
}

// GeneratorConfig returns the generator configuration of o.
func (o *Options) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Runtime:          o.Runtime,
		Suffix:           o.Suffix,
		DefinitionTag:    o.DefinitionTag,
		GenerateComments: o.Comments == nil || *o.Comments,
	}
}

// Marshal serializes Options to YAML.
func Marshal(o *Options) ([]byte, error) {
	return yaml.Marshal(o)
}
