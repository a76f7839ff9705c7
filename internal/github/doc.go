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

// Package github provides clients for fetching discussions and releases
// from the GitHub API. Discussions come from the GraphQL API via a single
// structured query with nested author, category, and comment sub-objects;
// releases come from the paginated REST list endpoint.
//
// The package includes:
//   - DiscussionClient and ReleaseClient interfaces
//   - A GraphQL implementation using the shurcooL/graphql library
//   - A REST implementation over net/http with page/per_page pagination
//   - CollectReleases, the pagination loop with short-page and fixed-limit
//     stop conditions
//   - Mock clients for testing
//
// Basic usage:
//
//	client := github.NewRESTClient("your-github-token", "https://api.github.com")
//	releases, err := github.CollectReleases(ctx, client, "golang", "go",
//	    github.StopPolicy{Limit: 10}, 100)
//	if err != nil {
//	    // Handle error
//	}
//	for _, release := range releases {
//	    // Process release
//	}
package github
