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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hgerrors "github.com/hubgather/hubgather/internal/errors"
	"github.com/hubgather/hubgather/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hubgather",
		Short: "Fetch discussions and releases from GitHub repositories",
		Long: `Hubgather fetches paginated resource collections from the GitHub API,
normalizes them, and emits them as markdown files, JSON, CSV, or a
formatted table. Discussions come from the GraphQL API; releases from
the paginated REST API.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newDiscussionsCommand())
	rootCmd.AddCommand(newReleasesCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, hgerrors.ErrMissingToken) ||
		errors.Is(err, hgerrors.ErrInvalidToken) ||
		errors.Is(err, hgerrors.ErrRepoNotFound) ||
		errors.Is(err, hgerrors.ErrRateLimit) {
		return 2 // Configuration/authentication errors
	}

	if errors.Is(err, hgerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
