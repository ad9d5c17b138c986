package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the upstream used when no other endpoint is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// Config holds all configuration for the application
type Config struct {
	Fetch  FetchConfig  `yaml:"fetch"`
	Server ServerConfig `yaml:"server"`
}

// FetchConfig holds upstream-fetch configuration
type FetchConfig struct {
	Endpoint string   `yaml:"endpoint"`
	Timeout  Duration `yaml:"timeout"`
}

// ServerConfig holds HTTP presentation surface configuration
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Duration lets YAML carry Go duration strings such as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Load builds configuration in three layers: compiled-in defaults, then an
// optional YAML file at path, then environment variables on top.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Fetch: FetchConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  Duration(30 * time.Second),
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// config file is optional
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.Fetch.Endpoint = getEnv("API_ENDPOINT", cfg.Fetch.Endpoint)
	cfg.Fetch.Timeout = Duration(getEnvDuration("API_TIMEOUT", time.Duration(cfg.Fetch.Timeout)))
	cfg.Server.Port = getEnvInt("SERVER_PORT", cfg.Server.Port)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
