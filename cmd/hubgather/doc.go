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

// Package main implements the hubgather command-line interface.
// The tool fetches discussions and releases from GitHub repositories
// and emits them as markdown files, JSON, CSV, or a formatted table.
//
// The CLI supports:
//   - Saving discussions as one markdown file each, with optional comments
//   - Rendering releases as a table, JSON array, or CSV file
//   - Fixed-limit or fetch-everything pagination
//   - GitHub token authentication via flag, environment variable, or .env file
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	hubgather discussions <owner>/<repo> [flags]
//	hubgather releases <owner>/<repo> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	hubgather discussions vercel/next.js --limit 20 --include-comments
//	hubgather releases cockroachdb/cockroach --all --format csv
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration/authentication error
//   - 3: Network error
package main
