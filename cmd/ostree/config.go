package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the command line tool. Values are read from
// a YAML file and may be overridden by flags.
type Config struct {
	Tracing  string `yaml:"tracing"`  // trace level: debug, info or error
	Numeric  bool   `yaml:"numeric"`  // load keys as 64-bit integers
	Progress bool   `yaml:"progress"` // show a progress bar while loading
	Indent   int    `yaml:"indent"`   // indent per tree level for print; 0 fits the terminal
}

var defaultConfig = Config{
	Tracing: "info",
	Indent:  5,
}

const configName = ".ostree.yaml"

// defaultConfigPath returns the location of the per-user configuration file.
func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configName), nil
}

// LoadConfig reads configuration from path. If path is empty, the per-user
// configuration file is tried, and a missing file results in the defaults.
// Settings absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err = config.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &config, nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.Tracing) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("unknown trace level %q", c.Tracing)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, is %d", c.Indent)
	}
	return nil
}
