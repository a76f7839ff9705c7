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
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hubgather/hubgather/internal/normalize"
)

const (
	tableRowFormat = "%-20s %-15s %-30s %-12s %-10s %-10s"

	// Names longer than this are truncated
	nameDisplayLimit = 30
	nameTruncateAt   = 27
)

// TableRenderer prints a fixed-width columnar summary to a display stream.
type TableRenderer struct {
	w           io.Writer
	headerStyle lipgloss.Style
	dimStyle    lipgloss.Style
}

// NewTableRenderer creates a table renderer. Styling is disabled when the
// destination is not a terminal, so piped output stays plain text.
func NewTableRenderer(w io.Writer, isTTY bool) *TableRenderer {
	r := &TableRenderer{
		w:           w,
		headerStyle: lipgloss.NewStyle(),
		dimStyle:    lipgloss.NewStyle(),
	}
	if isTTY {
		r.headerStyle = lipgloss.NewStyle().Bold(true)
		r.dimStyle = lipgloss.NewStyle().Faint(true)
	}
	return r
}

// Render implements the Renderer interface.
func (r *TableRenderer) Render(releases []normalize.ReleaseInfo) error {
	header := fmt.Sprintf(tableRowFormat, "Version", "Major.Minor", "Name", "Release Date", "Prerelease", "Draft")
	if _, err := fmt.Fprintf(r.w, "\n%s\n", r.headerStyle.Render(header)); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}
	if _, err := fmt.Fprintln(r.w, r.dimStyle.Render(strings.Repeat("-", 100))); err != nil {
		return fmt.Errorf("failed to write table separator: %w", err)
	}

	for _, release := range releases {
		row := fmt.Sprintf(tableRowFormat,
			release.TagName,
			orNA(release.MajorMinor),
			truncateName(release.Name),
			orNA(release.PublishedDate),
			yesNo(release.Prerelease),
			yesNo(release.Draft),
		)
		if _, err := fmt.Fprintln(r.w, row); err != nil {
			return fmt.Errorf("failed to write table row for %s: %w", release.TagName, err)
		}
	}

	return nil
}

// truncateName shortens long names to the first 27 characters plus an ellipsis.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > nameDisplayLimit {
		return string(runes[:nameTruncateAt]) + "..."
	}
	return name
}

// orNA renders an absent optional value as N/A.
func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
