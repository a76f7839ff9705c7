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

// Package giterror classifies GitHub API failures into categories that the
// rest of the application can act on. GitHub reports failures inconsistently
// across its GraphQL and REST surfaces (HTTP status codes, GraphQL error
// messages, transport errors), so classification is string-based by design.
//
// The Inspector interface allows the classification rules to be swapped out
// in tests or extended for GitHub Enterprise deployments with different
// error formats.
package giterror
