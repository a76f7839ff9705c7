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

// Package version exposes the build version of hubgather.
// It is used in the User-Agent header sent to the GitHub API.
package version

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/hubgather/hubgather/pkg/version.Version=1.0.0"
var Version = "dev"
