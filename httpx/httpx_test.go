/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"net/http"
	"testing"

	"dirpx.dev/ioerr/kind"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		k    kind.Kind
		want int
	}{
		{"not found", kind.NotFound, http.StatusNotFound},
		{"permission", kind.PermissionDenied, http.StatusForbidden},
		{"exists", kind.AlreadyExists, http.StatusConflict},
		{"invalid input", kind.InvalidInput, http.StatusBadRequest},
		{"timed out", kind.TimedOut, http.StatusGatewayTimeout},
		{"unsupported", kind.Unsupported, http.StatusNotImplemented},
		{"interrupted", kind.Interrupted, statusClientClosedRequest},
		{"would block", kind.WouldBlock, http.StatusServiceUnavailable},
		{"refused", kind.ConnectionRefused, http.StatusBadGateway},
		{"broken pipe", kind.BrokenPipe, http.StatusBadGateway},
		{"other", kind.Other, http.StatusInternalServerError},
		{"undefined", kind.Kind(999), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.k); got != tt.want {
				t.Fatalf("Status(%v) = %d, want %d", tt.k, got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   kind.Kind
	}{
		{"not found", http.StatusNotFound, kind.NotFound},
		{"forbidden", http.StatusForbidden, kind.PermissionDenied},
		{"unauthorized", http.StatusUnauthorized, kind.PermissionDenied},
		{"conflict", http.StatusConflict, kind.AlreadyExists},
		{"bad request", http.StatusBadRequest, kind.InvalidInput},
		{"gateway timeout", http.StatusGatewayTimeout, kind.TimedOut},
		{"client closed", statusClientClosedRequest, kind.Interrupted},
		{"teapot", http.StatusTeapot, kind.Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.status); got != tt.want {
				t.Fatalf("KindOf(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestKindOf_RoundTrip(t *testing.T) {
	kinds := []kind.Kind{
		kind.NotFound,
		kind.PermissionDenied,
		kind.AlreadyExists,
		kind.InvalidInput,
		kind.TimedOut,
		kind.Unsupported,
		kind.OutOfMemory,
		kind.Interrupted,
	}
	for _, k := range kinds {
		if got := KindOf(Status(k)); got != k {
			t.Fatalf("KindOf(Status(%v)) = %v, want %v", k, got, k)
		}
	}
}
