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
	"encoding/json"
	"fmt"
	"io"

	"github.com/hubgather/hubgather/internal/normalize"
)

// JSONRenderer serializes the full collection as an indented JSON array.
// Key order is fixed by the ReleaseInfo struct; absent optional values
// serialize as null.
type JSONRenderer struct {
	w io.Writer
}

// Render implements the Renderer interface.
func (r *JSONRenderer) Render(releases []normalize.ReleaseInfo) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(releases); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}
