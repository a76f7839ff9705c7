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

	"github.com/hubgather/hubgather/internal/normalize"
)

// Format selects a release output strategy.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json, or csv)", s)
	}
}

// Renderer writes a full ordered collection of normalized releases.
// Implementations are interchangeable strategies; the caller picks one via
// NewRenderer and never branches on the format again.
type Renderer interface {
	Render(releases []normalize.ReleaseInfo) error
}

// NewRenderer returns the renderer for the given format. isTTY only affects
// the table renderer, which drops styling when the destination is not a
// terminal.
func NewRenderer(format Format, w io.Writer, isTTY bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{w: w}
	case FormatCSV:
		return &CSVRenderer{w: w}
	default:
		return NewTableRenderer(w, isTTY)
	}
}
