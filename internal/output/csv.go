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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hubgather/hubgather/internal/normalize"
)

// csvHeader is the fixed column order of CSV output.
var csvHeader = []string{"tag_name", "major_minor", "name", "published_date", "url", "prerelease", "draft"}

// CSVRenderer serializes the full collection as CSV with a fixed header row.
// Absent optional values render as empty cells, never an error.
type CSVRenderer struct {
	w io.Writer
}

// Render implements the Renderer interface.
func (r *CSVRenderer) Render(releases []normalize.ReleaseInfo) error {
	writer := csv.NewWriter(r.w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, release := range releases {
		row := []string{
			release.TagName,
			orEmpty(release.MajorMinor),
			release.Name,
			orEmpty(release.PublishedDate),
			release.URL,
			strconv.FormatBool(release.Prerelease),
			strconv.FormatBool(release.Draft),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", release.TagName, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

// orEmpty renders an absent optional value as an empty cell.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
