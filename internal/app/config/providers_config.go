package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ProvidersConfig holds per-provider overrides read from a YAML file
type ProvidersConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers" validate:"dive,keys,oneof=elevateai assemblyai whisper youtube,endkeys"`
}

// ProviderConfig overrides the built-in settings of one adapter. Zero values
// keep the defaults.
type ProviderConfig struct {
	APIKey          string `yaml:"api_key,omitempty"`
	Endpoint        string `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	Model           string `yaml:"model,omitempty"`
	PollIntervalSec int    `yaml:"poll_interval_sec,omitempty" validate:"min=0,max=300"`
	MaxAttempts     int    `yaml:"max_attempts,omitempty" validate:"min=0,max=10000"`
	TimeoutSec      int    `yaml:"timeout_sec,omitempty" validate:"min=0,max=7200"`
}

// PollInterval returns the configured interval, or zero when unset
func (p ProviderConfig) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalSec) * time.Second
}

// Timeout returns the configured HTTP timeout, or zero when unset
func (p ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSec) * time.Second
}

// Get returns the overrides for a provider, or the zero value
func (c *ProvidersConfig) Get(name string) ProviderConfig {
	if c == nil {
		return ProviderConfig{}
	}
	return c.Providers[name]
}

// LoadProvidersConfig loads provider configuration from a YAML file
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	// Expand environment variables in path
	configPath = os.ExpandEnv(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseProvidersConfig(data)
}

// ParseProvidersConfig parses and validates YAML provider overrides
func ParseProvidersConfig(data []byte) (*ProvidersConfig, error) {
	var config ProvidersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// SaveProvidersConfig saves provider configuration to a YAML file
func SaveProvidersConfig(config *ProvidersConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// expandEnvironmentVariables resolves ${VAR} references in credentials
func (c *ProvidersConfig) expandEnvironmentVariables() {
	for name, provider := range c.Providers {
		v := provider.APIKey
		if strings.HasPrefix(v, "${") && strings.HasSuffix(v, "}") {
			provider.APIKey = os.Getenv(strings.TrimSuffix(strings.TrimPrefix(v, "${"), "}"))
			c.Providers[name] = provider
		}
	}
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	if path := os.Getenv("PROVIDERS_CONFIG"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "providers.yaml"
	}
	return filepath.Join(home, ".autoscribe", "providers.yaml")
}
