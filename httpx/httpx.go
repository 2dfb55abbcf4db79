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

// Package httpx converts between ioerr classifications and HTTP status
// codes.
//
// Like grpcx, this is classification only — no response body is built or
// written here.
package httpx

import (
	"net/http"

	"dirpx.dev/ioerr/kind"
)

// statusClientClosedRequest is the nginx convention for a request canceled
// by the client; net/http defines no constant for it.
const statusClientClosedRequest = 499

// Status maps a portable kind to the closest HTTP status code.
// The mapping is total: kinds without a natural counterpart (and undefined
// values) map to 500.
func Status(k kind.Kind) int {
	switch k {
	case kind.NotFound:
		return http.StatusNotFound
	case kind.PermissionDenied:
		return http.StatusForbidden
	case kind.AlreadyExists:
		return http.StatusConflict
	case kind.InvalidInput, kind.InvalidData:
		return http.StatusBadRequest
	case kind.TimedOut:
		return http.StatusGatewayTimeout
	case kind.Unsupported:
		return http.StatusNotImplemented
	case kind.OutOfMemory:
		return http.StatusInsufficientStorage
	case kind.Interrupted:
		return statusClientClosedRequest
	case kind.WouldBlock:
		return http.StatusServiceUnavailable
	case kind.ConnectionRefused, kind.ConnectionReset, kind.ConnectionAborted,
		kind.NotConnected, kind.BrokenPipe:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// KindOf maps an HTTP status code back to a portable kind, up to the
// representative kind of each status. Statuses with no counterpart map to
// kind.Other.
func KindOf(status int) kind.Kind {
	switch status {
	case http.StatusNotFound:
		return kind.NotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return kind.PermissionDenied
	case http.StatusConflict:
		return kind.AlreadyExists
	case http.StatusBadRequest:
		return kind.InvalidInput
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return kind.TimedOut
	case http.StatusNotImplemented:
		return kind.Unsupported
	case http.StatusInsufficientStorage:
		return kind.OutOfMemory
	case statusClientClosedRequest:
		return kind.Interrupted
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return kind.ConnectionRefused
	default:
		return kind.Other
	}
}
