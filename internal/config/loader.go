package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// LoadConfig loads the configuration file and applies defaults.
func LoadConfig(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	return cfg, nil
}
