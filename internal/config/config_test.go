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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("APIEndpoint = %q, want https://api.github.com", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("GraphQLEndpoint = %q, want https://api.github.com/graphql", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("TokenEnv = %q, want GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.Format != "table" {
		t.Errorf("Format = %q, want table", cfg.Defaults.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `github:
  api_endpoint: https://github.example.com/api/v3
  graphql_endpoint: https://github.example.com/api/graphql
defaults:
  page_size: 25
  output_dir: out
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://github.example.com/api/v3" {
		t.Errorf("APIEndpoint = %q, want enterprise endpoint", cfg.GitHub.APIEndpoint)
	}
	if cfg.Defaults.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.Defaults.OutputDir)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Defaults.Format)
	}
	// Unspecified values keep their defaults
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("TokenEnv = %q, want default GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("github: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_API_ENDPOINT", "https://ghe.internal/api/v3")
	t.Setenv("GITHUB_GRAPHQL_ENDPOINT", "https://ghe.internal/api/graphql")
	t.Setenv("HUBGATHER_PAGE_SIZE", "10")
	t.Setenv("HUBGATHER_OUTPUT_DIR", "/tmp/discussions")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.GitHub.APIEndpoint != "https://ghe.internal/api/v3" {
		t.Errorf("APIEndpoint = %q, want env override", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://ghe.internal/api/graphql" {
		t.Errorf("GraphQLEndpoint = %q, want env override", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.Defaults.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.OutputDir != "/tmp/discussions" {
		t.Errorf("OutputDir = %q, want env override", cfg.Defaults.OutputDir)
	}
}

func TestEnvOverrideIgnoresBadPageSize(t *testing.T) {
	t.Setenv("HUBGATHER_PAGE_SIZE", "not-a-number")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want default 100 for unparseable override", cfg.Defaults.PageSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty api endpoint", func(c *Config) { c.GitHub.APIEndpoint = "" }, true},
		{"empty graphql endpoint", func(c *Config) { c.GitHub.GraphQLEndpoint = "" }, true},
		{"empty token env", func(c *Config) { c.GitHub.TokenEnv = "" }, true},
		{"page size zero", func(c *Config) { c.Defaults.PageSize = 0 }, true},
		{"page size over limit", func(c *Config) { c.Defaults.PageSize = 101 }, true},
		{"unknown format", func(c *Config) { c.Defaults.Format = "xml" }, true},
		{"csv format", func(c *Config) { c.Defaults.Format = "csv" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
