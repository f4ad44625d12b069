// Package config loads the demo driver's configuration.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// defaultFiles are searched, in order, when no config path is given.
var defaultFiles = []string{"logchain.yaml", "logchain.yml"}

// Config holds the driver's ambient settings. Chain composition is fixed
// in code; only output destinations and diagnostics are configurable.
type Config struct {
	// FilePath is where the file sink appends its lines.
	FilePath string `yaml:"file_path"`

	// Sync forces an fsync after every file-sink write.
	Sync bool `yaml:"sync"`

	// Verbose enables debug diagnostics on stderr.
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		FilePath: "file_path",
	}
}

// Load reads configuration from a file.
// If path is given, that file must exist and parse. If path is empty,
// the default file names are tried in order and the defaults are
// returned when none is present.
func Load(path string) (*Config, error) {
	cfg := Default()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	} else {
		found := false
		for _, name := range defaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	if cfg.FilePath == "" {
		cfg.FilePath = Default().FilePath
	}

	return cfg, nil
}
