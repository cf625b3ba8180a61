package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Name     string         `yaml:"name"` // Assistant name injected into the prompt; optional.
	Provider ProviderConfig `yaml:"provider"`
}

// ProviderConfig describes the LLM provider used to generate replies.
// An empty APIKey leaves the imitator in prompt-only mode.
type ProviderConfig struct {
	Kind        string  `yaml:"kind"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing. This allows API keys to be kept in environment variables
// (e.g. loaded from a .env file) rather than committed in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Provider.Kind == "" {
		return fmt.Errorf("engine: config: provider kind is required")
	}

	if _, ok := getFactory(c.Provider.Kind); !ok {
		return fmt.Errorf("engine: config: unknown provider kind %q", c.Provider.Kind)
	}

	if c.Provider.Model == "" {
		return fmt.Errorf("engine: config: provider model is required")
	}

	return nil
}
