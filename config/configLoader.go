package config

import (
	"github.com/multiversx/mx-chain-core-go/core"
)

// LoadConfig returns the Config by reading it from the provided toml file
func LoadConfig(filepath string) (*Config, error) {
	cfg := &Config{}
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	err = CheckConfig(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
