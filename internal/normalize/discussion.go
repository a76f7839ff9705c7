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

// AnonymousAuthor is substituted for authors whose account no longer exists.
// The GraphQL API returns null for those; this sentinel applies only to the
// discussions pipeline.
const AnonymousAuthor = "Anonymous"

// NormalizedDiscussion is a discussion record with all optional sub-objects
// flattened to plain fields, ready for markdown rendering.
type NormalizedDiscussion struct {
	Title     string
	Author    string
	CreatedAt time.Time
	Body      string
	URL       string
	Category  string
	Comments  []NormalizedComment
}

// NormalizedComment is a flattened threaded comment, in server-supplied order.
type NormalizedComment struct {
	Author    string
	Body      string
	CreatedAt time.Time
}

// Discussion maps a raw discussion record to its normalized form. The title
// is required; a discussion without one is malformed and aborts the run.
// A missing author resolves to the Anonymous sentinel, a missing category to
// the empty string. Comments are normalized in order with the same author rule.
func Discussion(raw github.Discussion) (NormalizedDiscussion, error) {
	if raw.Title == "" {
		return NormalizedDiscussion{}, fmt.Errorf("discussion record %q is missing a title: %w", raw.ID, hgerrors.ErrMalformedRecord)
	}

	d := NormalizedDiscussion{
		Title:     raw.Title,
		Author:    AnonymousAuthor,
		CreatedAt: raw.CreatedAt,
		Body:      raw.Body,
		URL:       raw.URL,
	}
	if raw.Author != nil {
		d.Author = raw.Author.Login
	}
	if raw.Category != nil {
		d.Category = raw.Category.Name
	}

	d.Comments = make([]NormalizedComment, 0, len(raw.Comments))
	for _, c := range raw.Comments {
		comment := NormalizedComment{
			Author:    AnonymousAuthor,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		}
		if c.Author != nil {
			comment.Author = c.Author.Login
		}
		d.Comments = append(d.Comments, comment)
	}

	return d, nil
}

// Discussions normalizes a batch in order, aborting on the first malformed
// record so no partial output is ever produced downstream.
func Discussions(raw []github.Discussion) ([]NormalizedDiscussion, error) {
	normalized := make([]NormalizedDiscussion, 0, len(raw))
	for _, d := range raw {
		nd, err := Discussion(d)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, nd)
	}
	return normalized, nil
}
