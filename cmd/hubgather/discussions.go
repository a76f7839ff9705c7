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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hubgather/hubgather/internal/config"
	"github.com/hubgather/hubgather/internal/github"
	"github.com/hubgather/hubgather/internal/normalize"
	"github.com/hubgather/hubgather/internal/output"
)

// discussionsOptions holds the flag values for the discussions command.
type discussionsOptions struct {
	token           string
	configPath      string
	category        string
	outputDir       string
	limit           int
	includeComments bool
}

// newDiscussionsCommand builds the discussions subcommand.
func newDiscussionsCommand() *cobra.Command {
	var opts discussionsOptions

	cmd := &cobra.Command{
		Use:   "discussions <owner>/<repo>",
		Short: "Save discussions from a GitHub repository as markdown files",
		Long: `Fetch discussions from a GitHub repository via the GraphQL API and
save each one as a markdown file named by creation date and title.

The repository must be specified in the format: <owner>/<repo>
For example: vercel/next.js, golang/go

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable (a .env file is also read)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscussions(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&opts.category, "category", "", "Filter by discussion category id")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory to save markdown files (default: discussions)")
	cmd.Flags().IntVar(&opts.limit, "limit", 10, "Maximum number of discussions to fetch")
	cmd.Flags().BoolVar(&opts.includeComments, "include-comments", false, "Include comments in the output")

	return cmd
}

// runDiscussions executes the discussions command
func runDiscussions(ctx context.Context, repoArg string, opts discussionsOptions) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	token, err := resolveToken(opts.token, cfg)
	if err != nil {
		return err
	}

	client := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint)

	fmt.Fprintf(os.Stderr, "Fetching up to %d discussions from %s/%s...\n", opts.limit, owner, repo)

	raw, err := client.FetchDiscussions(ctx, owner, repo, github.DiscussionOptions{
		Limit:      opts.limit,
		CategoryID: opts.category,
	})
	if err != nil {
		return err
	}

	// Normalize the whole batch before writing anything, so a malformed
	// record cannot leave partial output behind.
	discussions, err := normalize.Discussions(raw)
	if err != nil {
		return err
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = cfg.Defaults.OutputDir
	}
	if !filepath.IsAbs(outputDir) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return fmt.Errorf("failed to resolve output directory: %w", wdErr)
		}
		outputDir = filepath.Join(wd, outputDir)
	}

	fmt.Fprintf(os.Stderr, "Found %d discussions\n", len(discussions))

	for i, d := range discussions {
		path, wErr := output.WriteMarkdownFile(d, outputDir, opts.includeComments)
		if wErr != nil {
			return wErr
		}
		fmt.Fprintf(os.Stderr, "[%d/%d] Saved: %s\n", i+1, len(discussions), filepath.Base(path))
	}

	fmt.Fprintf(os.Stderr, "\nAll discussions saved to %s\n", outputDir)
	return nil
}
