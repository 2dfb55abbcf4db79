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

// Package grpcx converts between ioerr classifications and gRPC status
// codes.
//
// The conversion is classification only: a kind maps to the closest
// codes.Code and back. No payload, detail or descriptor serialization
// happens here — callers who need rich error bodies should build them at
// the transport layer from the fields ioerr already exposes.
package grpcx

import (
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/ioerr"
	"dirpx.dev/ioerr/kind"
)

// Code maps a portable kind to the closest gRPC status code.
//
// The mapping is total: kinds without a natural counterpart (and undefined
// values) map to codes.Unknown. Transient transport-level kinds map to
// codes.Unavailable, which is what gRPC retry policies key on.
func Code(k kind.Kind) gcodes.Code {
	switch k {
	case kind.NotFound:
		return gcodes.NotFound
	case kind.PermissionDenied:
		return gcodes.PermissionDenied
	case kind.AlreadyExists:
		return gcodes.AlreadyExists
	case kind.InvalidInput, kind.InvalidData:
		return gcodes.InvalidArgument
	case kind.TimedOut:
		return gcodes.DeadlineExceeded
	case kind.Interrupted:
		return gcodes.Canceled
	case kind.Unsupported:
		return gcodes.Unimplemented
	case kind.OutOfMemory:
		return gcodes.ResourceExhausted
	case kind.WouldBlock, kind.ConnectionRefused, kind.ConnectionReset,
		kind.ConnectionAborted, kind.NotConnected, kind.BrokenPipe:
		return gcodes.Unavailable
	case kind.AddrInUse, kind.AddrNotAvailable:
		return gcodes.FailedPrecondition
	case kind.WriteZero, kind.UnexpectedEOF:
		return gcodes.DataLoss
	default:
		return gcodes.Unknown
	}
}

// KindOf maps a gRPC status code back to a portable kind.
//
// Several kinds share a status code, so this is the inverse of Code only up
// to the representative kind of each code (Unavailable comes back as
// ConnectionRefused, DataLoss as UnexpectedEOF). Codes with no counterpart
// map to kind.Other.
func KindOf(c gcodes.Code) kind.Kind {
	switch c {
	case gcodes.NotFound:
		return kind.NotFound
	case gcodes.PermissionDenied:
		return kind.PermissionDenied
	case gcodes.AlreadyExists:
		return kind.AlreadyExists
	case gcodes.InvalidArgument:
		return kind.InvalidInput
	case gcodes.DeadlineExceeded:
		return kind.TimedOut
	case gcodes.Canceled:
		return kind.Interrupted
	case gcodes.Unimplemented:
		return kind.Unsupported
	case gcodes.ResourceExhausted:
		return kind.OutOfMemory
	case gcodes.Unavailable:
		return kind.ConnectionRefused
	case gcodes.DataLoss:
		return kind.UnexpectedEOF
	default:
		return kind.Other
	}
}

// Error converts an ioerr.Error into a gRPC status error carrying the
// mapped code and the error's own description.
func Error(e ioerr.Error) error {
	return gstatus.Error(Code(e.Kind()), e.Error())
}

// FromError converts a gRPC status error into an ioerr.Error classified by
// the status code and wrapping err as the causal error, so the original
// status remains reachable through errors.As. Errors that do not carry a
// gRPC status (and nil) report ok=false.
func FromError(err error) (ioerr.Error, bool) {
	if err == nil {
		return ioerr.Error{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return ioerr.Error{}, false
	}
	return ioerr.New(KindOf(st.Code()), err), true
}
