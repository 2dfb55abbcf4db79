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

//go:build unix

package ioerr

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"dirpx.dev/ioerr/kind"
)

func TestKind_PlatformLookup(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want kind.Kind
	}{
		{"enoent", int32(unix.ENOENT), kind.NotFound},
		{"eacces", int32(unix.EACCES), kind.PermissionDenied},
		{"etimedout", int32(unix.ETIMEDOUT), kind.TimedOut},
		{"unknown", 99999, kind.Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRawOSError(tt.code).Kind(); got != tt.want {
				t.Fatalf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_PlatformMessage(t *testing.T) {
	got := FromRawOSError(int32(unix.ENOENT)).Error()
	if !strings.Contains(got, "no such file") {
		t.Fatalf("Error() = %q, want the platform's ENOENT message", got)
	}
	if !strings.Contains(got, "os error") {
		t.Fatalf("Error() = %q, want the raw code spelled out", got)
	}
}

func TestFromError_WrappedErrno(t *testing.T) {
	// EPIPE matches none of the portable sentinels, so the classification
	// must come from the platform's errno table.
	in := fmt.Errorf("write frame: %w", unix.EPIPE)
	e := FromError(in)

	if got := e.Kind(); got != kind.BrokenPipe {
		t.Fatalf("Kind() = %v, want %v", got, kind.BrokenPipe)
	}
	if e.Ref() != in {
		t.Fatalf("Ref() = %v, want the original wrapped error", e.Ref())
	}
}

func TestFromError_PathError(t *testing.T) {
	// A path error around ENOENT keeps its context but lifts the errno's
	// classification.
	in := &fs.PathError{Op: "open", Path: "/nope", Err: unix.ENOENT}
	e := FromError(in)

	if _, ok := e.RawOSError(); ok {
		t.Fatal("path error collapsed to a raw code, losing its context")
	}
	if got := e.Kind(); got != kind.NotFound {
		t.Fatalf("Kind() = %v, want %v", got, kind.NotFound)
	}
	if e.Ref() != in {
		t.Fatalf("Ref() = %v, want the original path error", e.Ref())
	}
}
