// Package config loads the tool configuration. The format is determined
// by the file extension: .json, .yaml/.yml or .hcl.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = ".xlsxsender.yaml"

// 📚 Config is the complete tool configuration
type Config struct {
	// Source is the folder scanned for spreadsheet files
	Source string `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional"`
	// Destination is the folder sent files are copied into
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty" hcl:"destination,optional"`
	// Extension is the candidate file extension, matched case-insensitively
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty" hcl:"extension,optional"`
	// IgnoreGlobs excludes matching file names from scans
	IgnoreGlobs []string `json:"ignore_globs,omitempty" yaml:"ignore_globs,omitempty" hcl:"ignore_globs,optional"`
	// Async runs operations on a background goroutine
	Async bool `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
	// Debug enables debug logging
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty" hcl:"debug,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extension: ".xlsx",
	}
}

// Load reads the configuration at path. A missing file at the default
// location yields the built-in defaults; a missing file at an explicit
// location is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && filepath.Base(path) == DefaultFile {
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		cfg, err = loadJSON(data)
	case ".yaml", ".yml":
		cfg, err = loadYAML(data)
	case ".hcl":
		cfg, err = loadHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported config extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadJSON loads a configuration from JSON data.
func loadJSON(data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &cfg, nil
}

// loadYAML loads a configuration from YAML data.
func loadYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// loadHCL loads a configuration from HCL data.
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return &cfg, nil
}

// applyDefaults fills unset fields with defaults and normalizes the
// extension.
func (c *Config) applyDefaults() {
	if c.Extension == "" {
		c.Extension = ".xlsx"
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	c.Extension = strings.ToLower(c.Extension)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Extension == "." {
		return errors.New("extension must not be empty")
	}
	return nil
}
