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

import (
	"context"
	"fmt"
	"time"
)

// MockReleaseClient is a mock implementation of the ReleaseClient interface
// for testing. It serves pages out of the Releases slice, so pagination
// behavior can be exercised without a server.
type MockReleaseClient struct {
	// Releases is the full dataset pages are served from
	Releases []Release

	// Error to return on every call
	Error error

	// Track calls for verification
	CallCount int
	LastOwner string
	LastRepo  string
	LastOpts  FetchOptions
}

// FetchReleasePage implements the ReleaseClient interface.
func (m *MockReleaseClient) FetchReleasePage(ctx context.Context, owner, repo string, opts FetchOptions) ([]Release, error) {
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastOpts = opts

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Error != nil {
		return nil, m.Error
	}

	start := (opts.Page - 1) * opts.PageSize
	if start >= len(m.Releases) {
		return []Release{}, nil
	}
	end := start + opts.PageSize
	if end > len(m.Releases) {
		end = len(m.Releases)
	}
	return m.Releases[start:end], nil
}

// MockDiscussionClient is a mock implementation of the DiscussionClient
// interface for testing.
type MockDiscussionClient struct {
	Discussions []Discussion
	Error       error

	CallCount int
	LastOwner string
	LastRepo  string
	LastOpts  DiscussionOptions
}

// FetchDiscussions implements the DiscussionClient interface.
func (m *MockDiscussionClient) FetchDiscussions(ctx context.Context, owner, repo string, opts DiscussionOptions) ([]Discussion, error) {
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastOpts = opts

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Error != nil {
		return nil, m.Error
	}

	limit := opts.Limit
	if limit <= 0 || limit > len(m.Discussions) {
		limit = len(m.Discussions)
	}
	return m.Discussions[:limit], nil
}

// GenerateTestReleases builds n sequential releases for tests.
func GenerateTestReleases(n int) []Release {
	releases := make([]Release, 0, n)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		tag := fmt.Sprintf("v1.%d.0", i)
		releases = append(releases, Release{
			TagName:     tag,
			Name:        fmt.Sprintf("Release %s", tag),
			CreatedAt:   base.AddDate(0, 0, i).Format(time.RFC3339),
			PublishedAt: base.AddDate(0, 0, i).Format(time.RFC3339),
			HTMLURL:     fmt.Sprintf("https://github.com/octocat/hello-world/releases/tag/%s", tag),
		})
	}
	return releases
}
