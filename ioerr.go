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

package ioerr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"dirpx.dev/ioerr/internal/platform"
	"dirpx.dev/ioerr/kind"
	"dirpx.dev/ioerr/shared"
)

// repr tags the active variant of an Error. It is fixed at construction and
// never changes afterwards.
type repr uint8

const (
	// reprSimple carries a portable classification and nothing else.
	// It is the zero tag, so the zero Error is a Simple error of kind.Other.
	reprSimple repr = iota

	// reprOs carries a raw platform error code. No classification is
	// computed or stored at construction; Kind derives it on demand.
	reprOs

	// reprCustom carries a portable classification plus a shared handle to
	// an arbitrary causal error.
	reprCustom
)

// Error is a comparable, cheaply clonable representation of an I/O error.
//
// The errors produced by the os and net packages carry their classification
// and causal chain, but cannot be compared or duplicated without losing
// either. Error keeps both: callers can store it, use it as a map key,
// retry-key on it, or cache it, and still recover the raw platform code,
// the portable kind, and the wrapped cause.
//
// Exactly one of three variants is active, fixed at construction:
//
//   - a raw platform code (FromRawOSError, LastOSError);
//   - a portable kind alone (FromKind);
//   - a portable kind plus a shared causal error (New, Newf).
//
// FromError picks the variant that best preserves an arbitrary Go error.
//
// Error is a value type with no exported fields; all fields are comparable,
// so == implements the equality contract directly: raw-code errors compare
// by code, kind-only errors by kind, and causal errors by the identity of
// the shared handle — never by the wrapped error's content. The same rules
// make Error usable as a map key. The zero value is a kind-only error of
// kind.Other.
type Error struct {
	tag    repr
	code   int32
	kind   kind.Kind
	handle *shared.Handle
}

// Ensure Error satisfies the error interface by value.
var _ error = Error{}

// FromError converts an arbitrary Go error into an Error, preserving as
// much of its classification and content as possible:
//
//   - a bare syscall.Errno becomes a raw-code error, exactly as if built
//     with FromRawOSError;
//   - a bare standard sentinel (fs.ErrNotExist, io.ErrUnexpectedEOF, ...)
//     becomes a kind-only error, since the sentinel carries nothing beyond
//     its classification;
//   - everything else becomes a causal error wrapping err itself, with the
//     kind derived from the portable sentinels in err's chain or, failing
//     that, from an errno found in the chain.
//
// FromError(nil) returns the zero Error.
func FromError(err error) Error {
	if err == nil {
		return Error{}
	}
	if errno, ok := err.(syscall.Errno); ok {
		return FromRawOSError(int32(errno))
	}
	k := kind.Of(err)
	if k == kind.Other {
		// Not a portable sentinel; the chain may still carry an errno,
		// e.g. a *fs.PathError around ENOENT. The wrapper's context is
		// kept by wrapping err, only the classification is lifted.
		var errno syscall.Errno
		if errors.As(err, &errno) {
			k = platform.KindOf(int32(errno))
		}
	}
	if k != kind.Other && isBareSentinel(err) {
		return FromKind(k)
	}
	return New(k, err)
}

// isBareSentinel reports whether err is exactly one of the portable sentinel
// errors, with no message or chain beyond what its kind already conveys.
// Identity comparison is deliberate: a wrapped sentinel has context worth
// keeping and must not collapse to a kind-only error.
func isBareSentinel(err error) bool {
	switch err {
	case fs.ErrNotExist, fs.ErrExist, fs.ErrPermission, fs.ErrInvalid,
		errors.ErrUnsupported, io.ErrUnexpectedEOF, io.ErrShortWrite,
		os.ErrDeadlineExceeded, context.DeadlineExceeded, context.Canceled:
		return true
	}
	return false
}

// FromKind returns a kind-only Error. Two errors built this way from the
// same kind compare equal.
func FromKind(k kind.Kind) Error {
	return Error{tag: reprSimple, kind: k}
}

// New returns a causal Error of the given kind wrapping cause.
//
// The cause is wrapped in a fresh shared handle: every New call produces a
// distinct identity, so two causal errors compare equal only when one is a
// Clone of the other, never because their causes are content-equal. The
// cause must be safe for concurrent reads once shared and must not be
// mutated afterwards.
//
// A nil cause degrades to FromKind(k).
func New(k kind.Kind, cause error) Error {
	if cause == nil {
		return FromKind(k)
	}
	return Error{tag: reprCustom, kind: k, handle: shared.Wrap(cause)}
}

// Newf is New with an fmt.Errorf-built cause. The format specifiers support
// %w, so an underlying error can be kept in the chain.
func Newf(k kind.Kind, format string, args ...any) Error {
	return New(k, fmt.Errorf(format, args...))
}

// FromRawOSError returns a raw-code Error for a platform error code.
//
// No platform lookup happens here: classification and message resolution
// are deferred to Kind and Error respectively. Two errors built this way
// from the same code compare equal.
func FromRawOSError(code int32) Error {
	return Error{tag: reprOs, code: code}
}

// LastOSError queries the host's per-thread last-error state once and
// converts the result via FromRawOSError.
//
// The queried state is overwritten by subsequent calls on the same thread,
// so callers must invoke this promptly after the failing operation — that
// raciness is the platform's, not this type's. On platforms without an
// accessible last-error register (unix hosts under the Go runtime) the
// query reports code 0.
func LastOSError() Error {
	return FromRawOSError(platform.LastCode())
}

// RawOSError returns the raw platform code when the error was constructed
// from one, and ok=false otherwise. Absence is not an error: kind-only and
// causal errors simply never carried a code.
func (e Error) RawOSError() (code int32, ok bool) {
	if e.tag != reprOs {
		return 0, false
	}
	return e.code, true
}

// Kind returns the portable classification of the error.
//
// For raw-code errors the platform table is consulted on every call rather
// than cached at construction: the lookup is cheap and deterministic, but
// code-to-kind assignments are not guaranteed stable across platform
// versions, so the stored truth is the code, not the kind. The other
// variants return their stored kind directly.
func (e Error) Kind() kind.Kind {
	if e.tag == reprOs {
		return platform.KindOf(e.code)
	}
	return e.kind
}

// Ref returns borrowed, read-only access to the wrapped causal error, or
// nil when the error does not carry one. The returned error remains shared
// with every clone; callers must not mutate it.
func (e Error) Ref() error {
	if e.tag != reprCustom {
		return nil
	}
	return e.handle.Err()
}

// IntoInner hands out the shared handle of a causal error, transferring the
// receiver's reference to the caller; ok is false for the other variants.
//
// Go's value semantics cannot consume the receiver, so the source value
// remains technically usable — callers taking the handle are expected to
// discard it. No share count changes: the reference moves, it is not
// duplicated.
func (e Error) IntoInner() (*shared.Handle, bool) {
	if e.tag != reprCustom {
		return nil, false
	}
	return e.handle, true
}

// Clone duplicates the error.
//
// Raw-code and kind-only errors are plain value copies. For causal errors
// the shared handle's count is incremented and the wrapped cause is never
// deep-copied, so a clone always compares equal to its source. Plain Go
// assignment also yields an equal value but bypasses the share count; Clone
// is the accounted duplication path.
func (e Error) Clone() Error {
	if e.tag == reprCustom {
		e.handle.Clone()
	}
	return e
}

// Error implements the error interface. The description is never empty:
// raw-code errors format through the platform's code-to-message lookup,
// kind-only errors through the kind's description, and causal errors
// delegate entirely to the wrapped error.
func (e Error) Error() string {
	switch e.tag {
	case reprOs:
		return fmt.Sprintf("%s (os error %d)", platform.Message(e.code), e.code)
	case reprCustom:
		return e.handle.Err().Error()
	default:
		return e.kind.Description()
	}
}

// Unwrap exposes the causal chain to errors.Is and errors.As. A causal
// error unwraps to its wrapped cause, whose own chain continues from there;
// raw-code and kind-only errors have no cause and unwrap to nil.
func (e Error) Unwrap() error {
	if e.tag != reprCustom {
		return nil
	}
	return e.handle.Err()
}

// Is lets errors.Is match an Error against the standard portable sentinels
// by kind, the way syscall.Errno and the os package errors do:
// errors.Is(e, fs.ErrNotExist) holds for any e whose kind is NotFound,
// whichever variant produced that kind.
func (e Error) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e.Kind() == kind.NotFound
	case fs.ErrExist:
		return e.Kind() == kind.AlreadyExists
	case fs.ErrPermission:
		return e.Kind() == kind.PermissionDenied
	case errors.ErrUnsupported:
		return e.Kind() == kind.Unsupported
	}
	return false
}
