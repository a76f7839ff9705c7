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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	hgerrors "github.com/hubgather/hubgather/internal/errors"
	"github.com/hubgather/hubgather/internal/giterror"
)

const apiVersion = "2022-11-28"

// RESTClient implements the ReleaseClient interface using GitHub's REST API.
// Each call fetches one page of the paginated releases list endpoint.
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
	inspector  giterror.Inspector
}

// NewRESTClient creates a new GitHub REST client with the provided token and
// base API URL (e.g. https://api.github.com). Authentication, User-Agent,
// and a response size cap are applied by the underlying transport.
func NewRESTClient(token, baseURL string) *RESTClient {
	return &RESTClient{
		httpClient: newHTTPClient(token),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		inspector:  giterror.NewInspector(),
	}
}

// FetchReleasePage retrieves one page of releases from the specified
// repository. A non-success status code or transport error aborts with no
// partial results; the caller receives total failure.
func (c *RESTClient) FetchReleasePage(ctx context.Context, owner, repo string, opts FetchOptions) ([]Release, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build releases request: %w", err)
	}

	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(pageSize))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.inspector.IsNetworkError(err) {
			return nil, fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w", hgerrors.ErrNetworkFailure)
		}
		return nil, fmt.Errorf("releases request failed: %v: %w", err, hgerrors.ErrFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, owner, repo)
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, fmt.Errorf("failed to decode releases response: %v: %w", err, hgerrors.ErrFetchFailed)
	}

	return releases, nil
}

// statusError maps a non-2xx response to a domain error with an actionable message.
func (c *RESTClient) statusError(resp *http.Response, owner, repo string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", hgerrors.ErrInvalidToken)
	case http.StatusForbidden, http.StatusTooManyRequests:
		// 403 is also how GitHub reports primary rate limit exhaustion
		if strings.Contains(strings.ToLower(detail), "rate limit") || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", hgerrors.ErrRateLimit)
		}
		return fmt.Errorf("GitHub API access forbidden. Check your token's scopes: %w", hgerrors.ErrInvalidToken)
	case http.StatusNotFound:
		return fmt.Errorf("repository '%s/%s' not found. Please check the repository name and your access permissions: %w", owner, repo, hgerrors.ErrRepoNotFound)
	default:
		return fmt.Errorf("API request failed with status %d. Response: %s: %w", resp.StatusCode, detail, hgerrors.ErrFetchFailed)
	}
}
