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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Kind is the portable classification of an I/O failure.
//
// It names the *category* of a failure ("not found", "permission denied",
// "timed out"), independently of the platform-specific integer code that may
// have produced it. Kinds are closed and enumerable: adapters and retry
// policies can exhaustively switch over them.
//
// The zero value is Other, the catch-all category for failures that do not
// fit any more specific kind.
type Kind uint32

const (
	// Other is the catch-all kind for errors that carry no more specific
	// classification. It is the zero value of Kind.
	Other Kind = iota

	// NotFound indicates that a referenced entity does not exist.
	NotFound

	// PermissionDenied indicates that the operation lacked the necessary
	// privileges on the target.
	PermissionDenied

	// ConnectionRefused indicates that the remote host actively refused
	// the connection.
	ConnectionRefused

	// ConnectionReset indicates that the connection was reset by the
	// remote host.
	ConnectionReset

	// ConnectionAborted indicates that the connection was terminated by
	// the local networking stack.
	ConnectionAborted

	// NotConnected indicates that an operation required a connection that
	// was not established.
	NotConnected

	// AddrInUse indicates that a local address could not be bound because
	// it is already in use.
	AddrInUse

	// AddrNotAvailable indicates that a requested address was not local or
	// otherwise not available.
	AddrNotAvailable

	// BrokenPipe indicates a write to a pipe or socket whose reading end
	// is closed.
	BrokenPipe

	// AlreadyExists indicates that an entity could not be created because
	// one with the same identity already exists.
	AlreadyExists

	// WouldBlock indicates that a non-blocking operation would have had to
	// block to complete.
	WouldBlock

	// InvalidInput indicates that a parameter of the operation was
	// malformed or out of range.
	InvalidInput

	// InvalidData indicates that consumed data was malformed, as opposed
	// to InvalidInput which is about the operation's own parameters.
	InvalidData

	// TimedOut indicates that the operation's time budget elapsed before
	// it could complete.
	TimedOut

	// WriteZero indicates that a write returned successfully without
	// consuming any data, usually meaning the sink can accept no more.
	WriteZero

	// Interrupted indicates that the operation was interrupted before
	// completion and can typically be retried.
	Interrupted

	// Unsupported indicates that the operation is not supported on this
	// platform or by this object.
	Unsupported

	// UnexpectedEOF indicates that the end of input was reached before the
	// operation could obtain the data it required.
	UnexpectedEOF

	// OutOfMemory indicates that the operation failed to allocate the
	// memory it needed.
	OutOfMemory
)

// maxKind is the highest defined kind. Used for range checks when parsing
// and marshaling.
const maxKind = OutOfMemory

// names holds the canonical token of each kind, indexed by value.
// Tokens follow the dirpx code conventions: lowercase, underscore-separated.
var names = [...]string{
	Other:             "other",
	NotFound:          "not_found",
	PermissionDenied:  "permission_denied",
	ConnectionRefused: "connection_refused",
	ConnectionReset:   "connection_reset",
	ConnectionAborted: "connection_aborted",
	NotConnected:      "not_connected",
	AddrInUse:         "addr_in_use",
	AddrNotAvailable:  "addr_not_available",
	BrokenPipe:        "broken_pipe",
	AlreadyExists:     "already_exists",
	WouldBlock:        "would_block",
	InvalidInput:      "invalid_input",
	InvalidData:       "invalid_data",
	TimedOut:          "timed_out",
	WriteZero:         "write_zero",
	Interrupted:       "interrupted",
	Unsupported:       "unsupported",
	UnexpectedEOF:     "unexpected_eof",
	OutOfMemory:       "out_of_memory",
}

// descriptions holds the human-readable text of each kind, indexed by value.
// This is the text an error classified by kind alone displays.
var descriptions = [...]string{
	Other:             "other error",
	NotFound:          "entity not found",
	PermissionDenied:  "permission denied",
	ConnectionRefused: "connection refused",
	ConnectionReset:   "connection reset",
	ConnectionAborted: "connection aborted",
	NotConnected:      "not connected",
	AddrInUse:         "address in use",
	AddrNotAvailable:  "address not available",
	BrokenPipe:        "broken pipe",
	AlreadyExists:     "entity already exists",
	WouldBlock:        "operation would block",
	InvalidInput:      "invalid input parameter",
	InvalidData:       "invalid data",
	TimedOut:          "timed out",
	WriteZero:         "write zero",
	Interrupted:       "operation interrupted",
	Unsupported:       "unsupported operation",
	UnexpectedEOF:     "unexpected end of file",
	OutOfMemory:       "out of memory",
}

// byName maps canonical tokens back to their Kind. Built once at init from
// the names table so the two can never drift apart.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k, n := range names {
		m[n] = Kind(k)
	}
	return m
}()

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a kind token.
	ErrKindInvalid = errors.New("ioerr: invalid kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Valid reports whether k is one of the defined kinds.
func Valid(k Kind) bool {
	return k <= maxKind
}

// String returns the canonical token of the kind, e.g. "not_found".
// Undefined values format as "kind(<n>)".
func (k Kind) String() string {
	if !Valid(k) {
		return "kind(" + strconv.FormatUint(uint64(k), 10) + ")"
	}
	return names[k]
}

// Description returns the human-readable text of the kind,
// e.g. "entity not found".
func (k Kind) Description() string {
	if !Valid(k) {
		return descriptions[Other]
	}
	return descriptions[k]
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical token form. It only performs obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' and ' ' with '_';
//
// It does NOT guarantee that the result names a defined kind — callers
// should still call Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and resolves it to a
// defined Kind. Unknown tokens produce ErrKindInvalid.
func Parse(s string) (Kind, error) {
	k, ok := byName[Normalize(s)]
	if !ok {
		return Other, ErrKindInvalid
	}
	return k, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical token.
func (k Kind) MarshalText() ([]byte, error) {
	if !Valid(k) {
		return nil, ErrKindInvalid
	}
	return []byte(names[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and resolves the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
