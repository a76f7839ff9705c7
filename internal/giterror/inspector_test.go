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

package giterror

import (
	"errors"
	"testing"
)

func TestIsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"401 status", errors.New("API request failed with status 401"), true},
		{"403 status", errors.New("server returned 403 Forbidden"), true},
		{"bad credentials", errors.New("Bad credentials"), true},
		{"unauthorized", errors.New("unauthorized access"), true},
		{"unrelated error", errors.New("something broke"), false},
		{"not found", errors.New("404 not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"404 status", errors.New("API request failed with status 404"), true},
		{"graphql resolution", errors.New("Could not resolve to a Repository with the name 'x/y'"), true},
		{"not found text", errors.New("repository not found"), true},
		{"auth error", errors.New("bad credentials"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	if !inspector.IsRateLimitError(errors.New("API rate limit exceeded for user")) {
		t.Error("expected rate limit message to classify as rate limit error")
	}
	if !inspector.IsRateLimitError(errors.New("status 429 too many requests")) {
		t.Error("expected 429 to classify as rate limit error")
	}
	if inspector.IsRateLimitError(errors.New("connection refused")) {
		t.Error("network error should not classify as rate limit")
	}
}

func TestIsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), true},
		{"dns failure", errors.New("lookup api.github.com: no such host"), true},
		{"timeout", errors.New("request timeout exceeded"), true},
		{"tls", errors.New("tls handshake failure"), true},
		{"api error", errors.New("API request failed with status 500"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
