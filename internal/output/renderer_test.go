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
	"bytes"
	"encoding/csv"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/hubgather/hubgather/internal/normalize"
)

func strPtr(s string) *string { return &s }

func sampleReleases() []normalize.ReleaseInfo {
	return []normalize.ReleaseInfo{
		{
			TagName:       "v24.1.1",
			Name:          "CockroachDB v24.1.1",
			PublishedAt:   strPtr("2024-06-10T14:30:00Z"),
			CreatedAt:     "2024-06-09T12:00:00Z",
			URL:           "https://example.com/v24.1.1",
			Prerelease:    false,
			Draft:         false,
			MajorMinor:    strPtr("v24.1"),
			PublishedDate: strPtr("2024-06-10"),
		},
		{
			TagName:   "v5",
			Name:      "Mystery build",
			CreatedAt: "2024-01-01T00:00:00Z",
			URL:       "https://example.com/v5",
			Draft:     true,
			// MajorMinor, PublishedAt, PublishedDate absent
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"xml", "", true},
		{"JSON", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewRendererSelectsStrategy(t *testing.T) {
	var buf bytes.Buffer

	if _, ok := NewRenderer(FormatJSON, &buf, false).(*JSONRenderer); !ok {
		t.Error("FormatJSON should select JSONRenderer")
	}
	if _, ok := NewRenderer(FormatCSV, &buf, false).(*CSVRenderer); !ok {
		t.Error("FormatCSV should select CSVRenderer")
	}
	if _, ok := NewRenderer(FormatTable, &buf, false).(*TableRenderer); !ok {
		t.Error("FormatTable should select TableRenderer")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	releases := sampleReleases()

	var buf bytes.Buffer
	if err := (&JSONRenderer{w: &buf}).Render(releases); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var parsed []normalize.ReleaseInfo
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("unmarshal of rendered JSON: %v", err)
	}

	if !reflect.DeepEqual(releases, parsed) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", parsed, releases)
	}
}

func TestJSONKeyOrderAndNulls(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONRenderer{w: &buf}).Render(sampleReleases()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	// Fixed key order follows the struct definition
	keys := []string{`"tag_name"`, `"name"`, `"published_at"`, `"created_at"`, `"url"`, `"prerelease"`, `"draft"`, `"major_minor"`, `"published_date"`}
	last := -1
	for _, key := range keys {
		idx := strings.Index(out, key)
		if idx == -1 {
			t.Fatalf("output missing key %s:\n%s", key, out)
		}
		if idx < last {
			t.Errorf("key %s out of order", key)
		}
		last = idx
	}

	if !strings.Contains(out, `"major_minor": null`) {
		t.Errorf("absent major_minor should serialize as null:\n%s", out)
	}
}

func TestCSVRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVRenderer{w: &buf}).Render(sampleReleases()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing rendered CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d CSV rows, want header + 2", len(records))
	}
	if !reflect.DeepEqual(records[0], csvHeader) {
		t.Errorf("header = %v, want %v", records[0], csvHeader)
	}

	first := records[1]
	if first[0] != "v24.1.1" || first[1] != "v24.1" || first[3] != "2024-06-10" {
		t.Errorf("first row = %v", first)
	}
	if first[5] != "false" || first[6] != "false" {
		t.Errorf("boolean cells = %v %v, want false false", first[5], first[6])
	}

	second := records[2]
	if second[1] != "" || second[3] != "" {
		t.Errorf("absent optionals should be empty cells, got major_minor=%q published_date=%q", second[1], second[3])
	}
	if second[6] != "true" {
		t.Errorf("draft cell = %q, want true", second[6])
	}
}

func TestCSVEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVRenderer{w: &buf}).Render(nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty collection should still emit the header row, got %d lines", len(lines))
	}
}
