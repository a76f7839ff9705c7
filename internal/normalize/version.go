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

import "regexp"

// First major.minor pair anywhere in the tag; an optional patch (or any
// further suffix) is ignored.
var majorMinorSearch = regexp.MustCompile(`\d+\.\d+`)

// CoarsenVersion derives a "v<major>.<minor>" identifier from a release tag,
// used to group related releases. It strips a single leading 'v' or 'V',
// then takes the first major.minor numeric pair found in the tag. Pre-release
// suffixes (-beta), build metadata (+build), alphabetic prefixes
// (release-v1.2.3), and extra numeric segments (v1.2.3.4) are all tolerated.
//
// Returns ok=false when no major.minor pair exists, e.g. for a bare
// single-number tag like "v5".
func CoarsenVersion(tag string) (string, bool) {
	if len(tag) > 0 && (tag[0] == 'v' || tag[0] == 'V') {
		tag = tag[1:]
	}

	if m := majorMinorSearch.FindString(tag); m != "" {
		return "v" + m, true
	}

	return "", false
}
