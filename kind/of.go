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
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

// Of classifies an arbitrary Go error by probing it against the standard
// library's portable sentinel errors with errors.Is, so wrapped chains are
// recognized as well as bare sentinels.
//
// Errors that match none of the sentinels classify as Other. Raw platform
// codes are deliberately NOT inspected here: errno-to-kind mapping is
// platform-specific and lives with the rest of the platform lookup code.
func Of(err error) Kind {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrInvalid):
		return InvalidInput
	case errors.Is(err, errors.ErrUnsupported):
		return Unsupported
	case errors.Is(err, io.ErrUnexpectedEOF):
		return UnexpectedEOF
	case errors.Is(err, io.ErrShortWrite):
		return WriteZero
	case errors.Is(err, os.ErrDeadlineExceeded):
		return TimedOut
	case errors.Is(err, context.DeadlineExceeded):
		return TimedOut
	case errors.Is(err, context.Canceled):
		return Interrupted
	default:
		return Other
	}
}
