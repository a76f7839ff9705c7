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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

import "time"

// Actor is the author of a discussion or comment. GitHub returns null for
// deleted accounts, so fields of this type are pointers where absence matters.
type Actor struct {
	Login string `json:"login"`
}

// Category is the discussion category a discussion belongs to.
type Category struct {
	Name string `json:"name"`
}

// Comment is a single threaded comment on a discussion, in server-supplied order.
type Comment struct {
	Author    *Actor    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Discussion is a raw discussion record as returned by the GraphQL API,
// before normalization. Author and Category are nil when the server
// returned null for them.
type Discussion struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	Author    *Actor    `json:"author"`
	Category  *Category `json:"category"`
	Comments  []Comment `json:"comments"`
}

// Release is a raw release record as returned by the REST API, before
// normalization. Timestamp fields stay as ISO-8601 strings here; parsing
// and derivation happen in the normalizer. PublishedAt is empty for drafts.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	CreatedAt   string `json:"created_at"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
	Prerelease  bool   `json:"prerelease"`
	Draft       bool   `json:"draft"`
}

// DiscussionOptions configures how discussions are fetched.
type DiscussionOptions struct {
	// Limit is the maximum number of discussions to request.
	// Defaults to 10 if not specified.
	Limit int

	// CategoryID restricts results to a single discussion category.
	// Empty string fetches from all categories.
	CategoryID string
}

// FetchOptions configures a single page request against the releases endpoint.
type FetchOptions struct {
	// Page is the 1-based page index.
	Page int

	// PageSize controls how many releases to fetch per page.
	// Defaults to 100 if not specified. Maximum is 100 per GitHub's API limits.
	PageSize int
}

// StopPolicy governs when release pagination ends.
// With All set, pagination continues until a short page signals exhaustion.
// Otherwise, fetching stops once Limit records have accumulated and the
// result is truncated to exactly Limit.
type StopPolicy struct {
	Limit int
	All   bool
}

// Default values for fetch operations
const (
	defaultPageSize        = 100
	maxPageSize            = 100
	defaultDiscussionLimit = 10
)
