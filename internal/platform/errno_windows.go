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

//go:build windows

package platform

import (
	"syscall"

	"golang.org/x/sys/windows"

	"dirpx.dev/ioerr/kind"
)

// KindOf maps a raw Win32 or Winsock error code to its portable kind.
// Codes outside the table classify as Other.
func KindOf(code int32) kind.Kind {
	switch syscall.Errno(code) {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return kind.NotFound
	case windows.ERROR_ACCESS_DENIED:
		return kind.PermissionDenied
	case windows.ERROR_ALREADY_EXISTS, windows.ERROR_FILE_EXISTS:
		return kind.AlreadyExists
	case windows.ERROR_INVALID_PARAMETER:
		return kind.InvalidInput
	case windows.ERROR_BROKEN_PIPE:
		return kind.BrokenPipe
	case windows.ERROR_HANDLE_EOF:
		return kind.UnexpectedEOF
	case windows.ERROR_NOT_ENOUGH_MEMORY, windows.ERROR_OUTOFMEMORY:
		return kind.OutOfMemory
	case windows.ERROR_NOT_SUPPORTED:
		return kind.Unsupported
	case windows.ERROR_SEM_TIMEOUT:
		return kind.TimedOut
	case windows.WSAECONNREFUSED:
		return kind.ConnectionRefused
	case windows.WSAECONNRESET:
		return kind.ConnectionReset
	case windows.WSAECONNABORTED:
		return kind.ConnectionAborted
	case windows.WSAENOTCONN:
		return kind.NotConnected
	case windows.WSAEADDRINUSE:
		return kind.AddrInUse
	case windows.WSAEADDRNOTAVAIL:
		return kind.AddrNotAvailable
	case windows.WSAETIMEDOUT:
		return kind.TimedOut
	case windows.WSAEWOULDBLOCK:
		return kind.WouldBlock
	case windows.WSAEINTR:
		return kind.Interrupted
	default:
		return kind.Other
	}
}

// Message resolves a raw code to the system's FormatMessage text.
// syscall.Errno falls back to a numeric form for codes the system cannot
// format, so the result is never empty.
func Message(code int32) string {
	return syscall.Errno(code).Error()
}

// LastCode queries GetLastError for the calling thread's last-error state.
// The value is overwritten by subsequent API calls on the same thread, so
// callers must query promptly after the failing operation.
func LastCode() int32 {
	if err := windows.GetLastError(); err != nil {
		if errno, ok := err.(syscall.Errno); ok {
			return int32(errno)
		}
	}
	return 0
}
