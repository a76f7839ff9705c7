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

// Package normalize maps raw API records to fixed output schemas.
//
// Normalization is a pure function of the input record: no external state,
// no mutation of the input. Missing optional fields never fail; they resolve
// to explicit "no value" markers (nil pointers, or the "Anonymous" sentinel
// for deleted discussion authors). Only a missing required field, such as a
// release tag or a discussion title, produces an error, and that error
// aborts the whole run before any output is written.
package normalize
