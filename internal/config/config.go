// Package config loads the optional YAML config of the search node
package config

import (
	"fmt"
	"os"

	"github.com/lucascesar918/grepzilla/internal/model"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env     string `yaml:"env"`
	Address string `yaml:"address"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// Apply fills launch parameters from the config file when a path is set.
// Values given on the command line win over the file.
func Apply(ni *model.NodeInit) error {
	if ni.ConfigPath != "" {
		cfg, err := LoadConfig(ni.ConfigPath)
		if err != nil {
			return err
		}
		if ni.Address == "" {
			ni.Address = cfg.Address
		}
		if ni.Env == "" {
			ni.Env = cfg.Env
		}
	}

	if ni.Address == "" {
		return fmt.Errorf("empty search-node address")
	}
	if ni.Env == "" {
		ni.Env = model.DefaultEnv
	}
	return nil
}
