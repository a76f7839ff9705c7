// Copyright 2025 Hubgather, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for hubgather with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables (including those loaded from a .env file)
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. A .env file in the
// working directory is loaded before environment variables are read;
// variables already set in the environment take precedence over .env
// entries.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .hubgather.yaml (current directory)
//   - .hubgather.yml (current directory)
//   - ~/.hubgather/config.yaml
//   - ~/.hubgather/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. The returned config has been validated.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// A .env file supplies GITHUB_TOKEN and friends for local use.
	// Missing files and already-set variables are both fine.
	_ = godotenv.Load()

	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".hubgather.yaml",
			".hubgather.yml",
			filepath.Join(os.Getenv("HOME"), ".hubgather", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".hubgather", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}

	if pageSize := os.Getenv("HUBGATHER_PAGE_SIZE"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil && size > 0 {
			cfg.Defaults.PageSize = size
		}
	}
	if outputDir := os.Getenv("HUBGATHER_OUTPUT_DIR"); outputDir != "" {
		cfg.Defaults.OutputDir = outputDir
	}
}

// Validate checks if the configuration contains valid values. It ensures
// the page size is within GitHub's limits, endpoints are not empty, and
// the default output format is known.
func (c *Config) Validate() error {
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("github.api_endpoint cannot be empty")
	}
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("github.graphql_endpoint cannot be empty")
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("github.token_env cannot be empty")
	}
	if c.Defaults.PageSize < 1 || c.Defaults.PageSize > 100 {
		return fmt.Errorf("defaults.page_size must be between 1 and 100, got %d", c.Defaults.PageSize)
	}
	switch c.Defaults.Format {
	case "table", "json", "csv":
	default:
		return fmt.Errorf("defaults.format must be one of table, json, csv, got %q", c.Defaults.Format)
	}
	return nil
}
