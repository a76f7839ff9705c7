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

	"github.com/shurcooL/graphql"

	hgerrors "github.com/hubgather/hubgather/internal/errors"
	"github.com/hubgather/hubgather/internal/giterror"
)

// GraphQLClient implements the DiscussionClient interface using GitHub's
// GraphQL API. A single structured query retrieves discussions with their
// nested author, category, and comment sub-objects.
type GraphQLClient struct {
	client    *graphql.Client
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided
// token and endpoint. The endpoint is configurable for GitHub Enterprise
// deployments. Authentication, User-Agent, and a response size cap are
// applied by the underlying transport.
func NewGraphQLClient(token, endpoint string) *GraphQLClient {
	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, newHTTPClient(token)),
		inspector: giterror.NewInspector(),
	}
}

// discussionNode mirrors the GraphQL selection set for a single discussion.
// Author fields are pointers so a null author (deleted account) survives
// decoding and can be substituted downstream.
type discussionNode struct {
	ID        graphql.String
	Title     graphql.String
	Body      graphql.String
	URL       graphql.String
	CreatedAt time.Time
	Author    *struct {
		Login graphql.String
	} `graphql:"author"`
	Category *struct {
		Name graphql.String
	} `graphql:"category"`
	Comments struct {
		Nodes []struct {
			Author *struct {
				Login graphql.String
			} `graphql:"author"`
			Body      graphql.String
			CreatedAt time.Time
		}
	} `graphql:"comments(first: 50)"`
}

// FetchDiscussions retrieves up to opts.Limit discussions from the specified
// repository in server-supplied order. The limit is clamped to the API's
// per-request maximum of 100. When opts.CategoryID is set, results are
// restricted to that category.
func (c *GraphQLClient) FetchDiscussions(ctx context.Context, owner, repo string, opts DiscussionOptions) ([]Discussion, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultDiscussionLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	variables := map[string]interface{}{
		"owner": graphql.String(owner),
		"repo":  graphql.String(repo),
		"limit": graphql.Int(int32(limit)), // #nosec G115 - limit is capped at 100
	}

	var nodes []discussionNode

	if opts.CategoryID != "" {
		var query struct {
			Repository struct {
				Discussions struct {
					Nodes []discussionNode
				} `graphql:"discussions(first: $limit, categoryId: $categoryId)"`
			} `graphql:"repository(owner: $owner, name: $repo)"`
		}
		variables["categoryId"] = graphql.ID(opts.CategoryID)

		if err := c.client.Query(ctx, &query, variables); err != nil {
			return nil, c.mapError(err, owner, repo)
		}
		nodes = query.Repository.Discussions.Nodes
	} else {
		var query struct {
			Repository struct {
				Discussions struct {
					Nodes []discussionNode
				} `graphql:"discussions(first: $limit)"`
			} `graphql:"repository(owner: $owner, name: $repo)"`
		}

		if err := c.client.Query(ctx, &query, variables); err != nil {
			return nil, c.mapError(err, owner, repo)
		}
		nodes = query.Repository.Discussions.Nodes
	}

	discussions := make([]Discussion, 0, len(nodes))
	for i := range nodes {
		discussions = append(discussions, convertDiscussionNode(&nodes[i]))
	}

	return discussions, nil
}

// convertDiscussionNode converts a GraphQL discussion node to our domain model.
func convertDiscussionNode(n *discussionNode) Discussion {
	d := Discussion{
		ID:        string(n.ID),
		Title:     string(n.Title),
		Body:      string(n.Body),
		URL:       string(n.URL),
		CreatedAt: n.CreatedAt,
	}

	if n.Author != nil {
		d.Author = &Actor{Login: string(n.Author.Login)}
	}
	if n.Category != nil {
		d.Category = &Category{Name: string(n.Category.Name)}
	}

	d.Comments = make([]Comment, 0, len(n.Comments.Nodes))
	for _, comment := range n.Comments.Nodes {
		converted := Comment{
			Body:      string(comment.Body),
			CreatedAt: comment.CreatedAt,
		}
		if comment.Author != nil {
			converted.Author = &Actor{Login: string(comment.Author.Login)}
		}
		d.Comments = append(d.Comments, converted)
	}

	return d
}

// mapError maps GraphQL errors to our domain errors with actionable messages
func (c *GraphQLClient) mapError(err error, owner, repo string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", hgerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", hgerrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("repository '%s/%s' not found. Please check the repository name and your access permissions: %w", owner, repo, hgerrors.ErrRepoNotFound)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w", hgerrors.ErrNetworkFailure)
	}

	// Generic failure: the whole run is aborted, no partial results
	return fmt.Errorf("discussions query failed: %v: %w", err, hgerrors.ErrFetchFailed)
}
