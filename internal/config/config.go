// Package config loads the optional .jackc.yaml project file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// FileName is the project config file's fixed name, looked for beside
// the compilation target when no explicit path is given.
const FileName = ".jackc.yaml"

// Config holds the values a .jackc.yaml may set. Every field's zero
// value means "unset", so the CLI can tell a file-provided value apart
// from one a flag should override.
type Config struct {
	OutputDir      string   `yaml:"outputDir"`
	BuiltinClasses []string `yaml:"builtinClasses"`
	Verbose        bool     `yaml:"verbose"`
}

// Load reads and parses path. An empty path searches the current
// working directory for FileName. A missing file is not an error: Load
// returns a zero-value *Config so callers always have one to merge
// flags into. An unparsable file is returned as an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Beside returns the default config path to look for next to target
// (a source file or a directory of source files).
func Beside(target string) string {
	info, err := os.Stat(target)
	if err == nil && !info.IsDir() {
		target = filepath.Dir(target)
	}
	return filepath.Join(target, FileName)
}
