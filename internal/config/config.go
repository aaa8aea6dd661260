// Package config loads the optional imgdup configuration file.
//
// Configuration is read from an imgdup.yaml file when present. Every value
// has a sensible default and command-line flags override file values, so
// the file is purely a convenience for recurring scans.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mirrorlake/imgdup/dedup"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "imgdup.yaml"

// DefaultReportPath is the report location used when neither the config
// file nor the command line names one.
const DefaultReportPath = "duplicates.json"

// File represents the structure of imgdup.yaml.
type File struct {
	// Directories to scan when the command line names none.
	Directories []string `yaml:"directories"`

	// Workers is the digest concurrency.
	Workers int `yaml:"workers"`

	// Extensions overrides the image extension allow-list.
	Extensions []string `yaml:"extensions"`

	// Report is the path scan writes to and prune reads from.
	Report string `yaml:"report"`
}

// Default returns the built-in configuration.
func Default() *File {
	return &File{
		Workers: dedup.DefaultWorkers,
		Report:  DefaultReportPath,
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// an unreadable or unparsable file is an error.
func Load(path string) (*File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = dedup.DefaultWorkers
	}
	if cfg.Report == "" {
		cfg.Report = DefaultReportPath
	}
	return cfg, nil
}
