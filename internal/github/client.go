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

package github

import "context"

// DiscussionClient defines the interface for fetching discussions from GitHub.
// This interface allows for easy mocking in tests.
type DiscussionClient interface {
	// FetchDiscussions retrieves up to opts.Limit discussions from the
	// specified repository in server-supplied order, optionally filtered
	// by category.
	FetchDiscussions(ctx context.Context, owner, repo string, opts DiscussionOptions) ([]Discussion, error)
}

// ReleaseClient defines the interface for fetching releases from GitHub.
// Implementations return a single page per call; the pagination loop lives
// in CollectReleases so stop policies can be tested against mocks.
type ReleaseClient interface {
	// FetchReleasePage retrieves one page of releases from the specified
	// repository. Page indexes start at 1.
	FetchReleasePage(ctx context.Context, owner, repo string, opts FetchOptions) ([]Release, error)
}
