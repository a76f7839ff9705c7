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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubgather/hubgather/internal/config"
	"github.com/hubgather/hubgather/internal/github"
	"github.com/hubgather/hubgather/internal/normalize"
	"github.com/hubgather/hubgather/internal/output"
)

// releasesOptions holds the flag values for the releases command.
type releasesOptions struct {
	token      string
	configPath string
	format     string
	outputFile string
	limit      int
	fetchAll   bool
}

// newReleasesCommand builds the releases subcommand.
func newReleasesCommand() *cobra.Command {
	var opts releasesOptions

	cmd := &cobra.Command{
		Use:   "releases <owner>/<repo>",
		Short: "Fetch release information from a GitHub repository",
		Long: `Fetch releases from a GitHub repository via the paginated REST API and
render them as a table, a JSON array, or CSV. Each release carries a
coarsened major.minor version derived from its tag, useful for grouping
related releases.

The repository must be specified in the format: <owner>/<repo>
For example: cockroachdb/cockroach, golang/go

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable (a .env file is also read)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReleases(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: table, json, or csv (default: table)")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file for json or csv format")
	cmd.Flags().IntVar(&opts.limit, "limit", 10, "Maximum number of releases to fetch")
	cmd.Flags().BoolVar(&opts.fetchAll, "all", false, "Fetch all releases (ignores --limit)")

	return cmd
}

// runReleases executes the releases command
func runReleases(ctx context.Context, repoArg string, opts releasesOptions) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	formatName := opts.format
	if formatName == "" {
		formatName = cfg.Defaults.Format
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	token, err := resolveToken(opts.token, cfg)
	if err != nil {
		return err
	}

	client := github.NewRESTClient(token, cfg.GitHub.APIEndpoint)

	limitStr := fmt.Sprintf("up to %d", opts.limit)
	if opts.fetchAll {
		limitStr = "all"
	}
	fmt.Fprintf(os.Stderr, "Fetching %s releases from %s/%s...\n", limitStr, owner, repo)

	raw, err := github.CollectReleases(ctx, client, owner, repo,
		github.StopPolicy{Limit: opts.limit, All: opts.fetchAll}, cfg.Defaults.PageSize)
	if err != nil {
		return err
	}

	// Normalize the whole batch before opening any output, so a malformed
	// record cannot leave a partial file behind.
	releases, err := normalize.Releases(raw)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Found %d releases\n", len(releases))

	if format == output.FormatTable {
		return output.NewRenderer(format, os.Stdout, isTTY(os.Stdout)).Render(releases)
	}

	outputFile := opts.outputFile
	if outputFile == "" {
		outputFile = fmt.Sprintf("%s_%s_releases.%s", owner, repo, format)
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := output.NewRenderer(format, file, false).Render(releases); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nRelease information saved to %s\n", outputFile)
	return nil
}
