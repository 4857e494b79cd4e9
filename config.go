package jsonable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the validation switch threaded into Wrap. The value is
// captured at wrap time; changing a Config afterwards does not affect
// wrappers already built from it.
type Config struct {
	Validate bool `json:"validate" yaml:"validate"`
}

// DefaultConfig enables validation.
func DefaultConfig() Config {
	return Config{Validate: true}
}

// LoadConfig reads a YAML config file. Keys not present keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("jsonable: parse config %s: %w", path, err)
	}
	return cfg, nil
}
