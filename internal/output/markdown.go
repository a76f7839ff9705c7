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

package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hubgather/hubgather/internal/normalize"
)

const maxFilenameLength = 100

var (
	// Word characters are Unicode letters and digits, not just ASCII, so
	// non-Latin titles keep their text.
	invalidFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}-]`)
	whitespaceRuns       = regexp.MustCompile(`[\s\p{Z}]+`)
)

// SanitizeFilename converts a discussion title to a safe filename fragment:
// lowercase, non-word/non-space/non-hyphen characters stripped, whitespace
// runs collapsed to single underscores, truncated to 100 characters.
// The function is idempotent.
func SanitizeFilename(name string) string {
	name = strings.ToLower(name)
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = whitespaceRuns.ReplaceAllString(name, "_")
	if runes := []rune(name); len(runes) > maxFilenameLength {
		name = string(runes[:maxFilenameLength])
	}
	return name
}

// DiscussionFilename derives the markdown filename for a discussion:
// a YYYYMMDD creation date prefix followed by the sanitized title.
func DiscussionFilename(d normalize.NormalizedDiscussion) string {
	return fmt.Sprintf("%s-%s.md", d.CreatedAt.Format("20060102"), SanitizeFilename(d.Title))
}

// FormatMarkdown renders one discussion as a markdown document: title
// heading, author/date/URL metadata block, body section, and (optionally)
// a comments section listing each comment's author, date, and body in order.
func FormatMarkdown(d normalize.NormalizedDiscussion, includeComments bool) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s\n\n", d.Title)
	fmt.Fprintf(&builder, "**Author:** [%s](https://github.com/%s)  \n", d.Author, d.Author)
	fmt.Fprintf(&builder, "**Created:** %s  \n", d.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&builder, "**URL:** %s  \n\n", d.URL)
	fmt.Fprintf(&builder, "## Discussion\n\n%s\n\n", d.Body)

	if includeComments && len(d.Comments) > 0 {
		builder.WriteString("## Comments\n\n")
		for _, comment := range d.Comments {
			fmt.Fprintf(&builder, "### [%s](https://github.com/%s) - %s\n\n",
				comment.Author, comment.Author, comment.CreatedAt.Format(time.RFC3339))
			fmt.Fprintf(&builder, "%s\n\n", comment.Body)
		}
	}

	return builder.String()
}

// WriteMarkdownFile writes one discussion as a markdown file into dir,
// creating the directory if needed. Returns the path of the written file.
func WriteMarkdownFile(d normalize.NormalizedDiscussion, dir string, includeComments bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, DiscussionFilename(d))
	content := FormatMarkdown(d, includeComments)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
