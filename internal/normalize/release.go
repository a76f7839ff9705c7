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

package normalize

import (
	"fmt"
	"time"

	hgerrors "github.com/hubgather/hubgather/internal/errors"
	"github.com/hubgather/hubgather/internal/github"
)

// ReleaseInfo is a normalized release record ready for rendering. Field
// order defines the key order of JSON output. Optional fields are pointers;
// nil serializes as JSON null, an empty CSV cell, or N/A in the table.
type ReleaseInfo struct {
	TagName       string  `json:"tag_name"`
	Name          string  `json:"name"`
	PublishedAt   *string `json:"published_at"`
	CreatedAt     string  `json:"created_at"`
	URL           string  `json:"url"`
	Prerelease    bool    `json:"prerelease"`
	Draft         bool    `json:"draft"`
	MajorMinor    *string `json:"major_minor"`
	PublishedDate *string `json:"published_date"`
}

// Release maps a raw release record to its normalized form. The tag name is
// required; a release without one is malformed and aborts the run. The name
// falls back to the tag, the major.minor identifier is derived from the tag,
// and the publication date is reduced to YYYY-MM-DD. A missing published_at
// (drafts) resolves to nil, never an error. All other fields pass through
// unmodified.
func Release(raw github.Release) (ReleaseInfo, error) {
	if raw.TagName == "" {
		return ReleaseInfo{}, fmt.Errorf("release record is missing tag_name: %w", hgerrors.ErrMalformedRecord)
	}

	info := ReleaseInfo{
		TagName:    raw.TagName,
		Name:       raw.Name,
		CreatedAt:  raw.CreatedAt,
		URL:        raw.HTMLURL,
		Prerelease: raw.Prerelease,
		Draft:      raw.Draft,
	}
	if info.Name == "" {
		info.Name = raw.TagName
	}

	if mm, ok := CoarsenVersion(raw.TagName); ok {
		info.MajorMinor = &mm
	}

	if raw.PublishedAt != "" {
		publishedAt := raw.PublishedAt
		info.PublishedAt = &publishedAt

		// Trailing Z is the UTC offset per RFC 3339
		t, err := time.Parse(time.RFC3339, raw.PublishedAt)
		if err != nil {
			return ReleaseInfo{}, fmt.Errorf("release %q has unparseable published_at %q: %w", raw.TagName, raw.PublishedAt, hgerrors.ErrMalformedRecord)
		}
		date := t.Format("2006-01-02")
		info.PublishedDate = &date
	}

	return info, nil
}

// Releases normalizes a batch in order, aborting on the first malformed
// record so no partial output is ever produced downstream.
func Releases(raw []github.Release) ([]ReleaseInfo, error) {
	infos := make([]ReleaseInfo, 0, len(raw))
	for _, r := range raw {
		info, err := Release(r)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
