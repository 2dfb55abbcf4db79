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

// Package kind defines the portable classification of I/O failures used by
// the ioerr error type.
//
// A "kind" is the platform-independent category of a failure, such as
// NotFound, PermissionDenied or TimedOut. Where a raw platform code pins a
// failure to one operating system's numbering, the kind is the stable value
// that business logic, retry policies and transport adapters can switch on.
//
// The set of kinds is closed. Each kind has:
//
//   - a canonical token ("not_found") for logs, config and wire payloads,
//     following the same lowercase/underscore conventions as dirpx error
//     codes;
//   - a human-readable description ("entity not found") used when an error
//     is displayed by classification alone.
//
// Of classifies arbitrary Go errors by the standard library's portable
// sentinels; the errno-to-kind tables live next to the other
// platform-specific lookup code, not here.
package kind
