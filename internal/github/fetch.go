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

// CollectReleases fetches releases page by page until the stop policy is
// satisfied, returning them in server-supplied order.
//
// Pagination starts at page 1 with a fixed page size. Termination:
//   - a page returning fewer records than the page size signals end-of-data;
//   - without policy.All, accumulating policy.Limit records stops the fetch
//     and the result is truncated to exactly policy.Limit. A non-positive
//     limit asks for nothing, so nothing is fetched.
//
// Any error aborts the whole fetch; no partial results are returned.
func CollectReleases(ctx context.Context, client ReleaseClient, owner, repo string, policy StopPolicy, pageSize int) ([]Release, error) {
	if !policy.All && policy.Limit <= 0 {
		return nil, nil
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	var releases []Release
	for page := 1; ; page++ {
		batch, err := client.FetchReleasePage(ctx, owner, repo, FetchOptions{
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			return nil, err
		}

		releases = append(releases, batch...)

		// A short page means the server has no more data
		if len(batch) < pageSize {
			break
		}

		if !policy.All && len(releases) >= policy.Limit {
			break
		}
	}

	if !policy.All && len(releases) > policy.Limit {
		releases = releases[:policy.Limit]
	}

	return releases, nil
}
