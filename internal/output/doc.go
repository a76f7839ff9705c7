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

// Package output renders normalized records to their final form.
//
// Release collections go through one of three interchangeable Renderer
// strategies selected by a Format value: a fixed-width table for display,
// a JSON array, or CSV with a fixed header row. Discussions are written as
// one markdown document per record, named by creation date and sanitized
// title.
package output
