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

package platform

import (
	"syscall"

	"golang.org/x/sys/unix"

	"dirpx.dev/ioerr/kind"
)

// KindOf maps a raw errno to its portable kind.
//
// The table covers the errnos with a well-known portable meaning; everything
// else classifies as Other. Errnos that alias each other on some systems
// (EWOULDBLOCK/EAGAIN, EOPNOTSUPP/ENOTSUP) are listed once, under the name
// shared by all supported platforms, to keep the switch free of duplicate
// cases.
func KindOf(code int32) kind.Kind {
	switch syscall.Errno(code) {
	case unix.ENOENT:
		return kind.NotFound
	case unix.EPERM, unix.EACCES:
		return kind.PermissionDenied
	case unix.ECONNREFUSED:
		return kind.ConnectionRefused
	case unix.ECONNRESET:
		return kind.ConnectionReset
	case unix.ECONNABORTED:
		return kind.ConnectionAborted
	case unix.ENOTCONN:
		return kind.NotConnected
	case unix.EADDRINUSE:
		return kind.AddrInUse
	case unix.EADDRNOTAVAIL:
		return kind.AddrNotAvailable
	case unix.EPIPE:
		return kind.BrokenPipe
	case unix.EEXIST:
		return kind.AlreadyExists
	case unix.EAGAIN:
		return kind.WouldBlock
	case unix.EINVAL:
		return kind.InvalidInput
	case unix.ETIMEDOUT:
		return kind.TimedOut
	case unix.EINTR:
		return kind.Interrupted
	case unix.ENOSYS, unix.ENOTSUP:
		return kind.Unsupported
	case unix.ENOMEM:
		return kind.OutOfMemory
	default:
		return kind.Other
	}
}

// Message resolves a raw errno to the platform's strerror text.
// syscall.Errno falls back to "errno <n>" for codes outside its table, so
// the result is never empty.
func Message(code int32) string {
	return syscall.Errno(code).Error()
}

// LastCode reports the host's per-thread last-error state.
//
// The Go runtime performs system calls without going through libc and does
// not preserve the C library's per-thread errno, so unix hosts have no
// last-error register that pure Go can read. The query reports code 0,
// which classifies as kind.Other.
func LastCode() int32 {
	return 0
}
