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
	"fmt"
	"os"
	"strings"

	"github.com/hubgather/hubgather/internal/config"
	hgerrors "github.com/hubgather/hubgather/internal/errors"
)

// parseRepository parses an owner/repo string into owner and repo components
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}

// resolveToken returns the GitHub token from the flag or the configured
// environment variable (which config may have populated from a .env file).
// A missing token is fatal before any network call is made.
func resolveToken(flagToken string, cfg *config.Config) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if token := os.Getenv(cfg.GitHub.TokenEnv); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("GitHub token not found. Set %s in your environment or .env file, or use --token: %w",
		cfg.GitHub.TokenEnv, hgerrors.ErrMissingToken)
}

// isTTY reports whether f is attached to a terminal.
func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
