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

package main

import (
	"errors"
	"testing"

	"github.com/hubgather/hubgather/internal/config"
	hgerrors "github.com/hubgather/hubgather/internal/errors"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "valid repository",
			input:     "golang/go",
			wantOwner: "golang",
			wantRepo:  "go",
		},
		{
			name:      "valid with hyphens and dots",
			input:     "cockroachdb/cockroach-operator.v2",
			wantOwner: "cockroachdb",
			wantRepo:  "cockroach-operator.v2",
		},
		{
			name:      "surrounding whitespace trimmed",
			input:     " golang / go ",
			wantOwner: "golang",
			wantRepo:  "go",
		},
		{
			name:    "missing slash",
			input:   "golang",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "github.com/golang/go",
			wantErr: true,
		},
		{
			name:    "empty owner",
			input:   "/go",
			wantErr: true,
		},
		{
			name:    "empty repo",
			input:   "golang/",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRepository(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRepository(%q) expected error, got owner=%q repo=%q", tt.input, owner, repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRepository(%q) unexpected error: %v", tt.input, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("parseRepository(%q) = (%q, %q), want (%q, %q)",
					tt.input, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestResolveToken(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("flag takes precedence over environment", func(t *testing.T) {
		t.Setenv(cfg.GitHub.TokenEnv, "env-token")

		token, err := resolveToken("flag-token", cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "flag-token" {
			t.Errorf("expected flag-token, got %q", token)
		}
	})

	t.Run("falls back to environment variable", func(t *testing.T) {
		t.Setenv(cfg.GitHub.TokenEnv, "env-token")

		token, err := resolveToken("", cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "env-token" {
			t.Errorf("expected env-token, got %q", token)
		}
	})

	t.Run("missing token returns ErrMissingToken", func(t *testing.T) {
		t.Setenv(cfg.GitHub.TokenEnv, "")

		_, err := resolveToken("", cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, hgerrors.ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got: %v", err)
		}
	})
}
