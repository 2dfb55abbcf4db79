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

// Package platform holds the per-GOOS parts of ioerr: the tables that map
// raw operating system error codes to portable kinds, the code-to-message
// lookup, and the host's last-error query.
//
// Every build provides the same three functions:
//
//   - KindOf(code) classifies a raw code. The result is computed from the
//     table on every call and never cached; code-to-kind assignments are a
//     property of the platform, not of this package, and are not guaranteed
//     stable across platform versions.
//   - Message(code) resolves a raw code to the platform's human-readable
//     message (strerror on unix, FormatMessage on windows). The result is
//     always non-empty: unknown codes fall back to a numeric form.
//   - LastCode() queries the host's per-thread last-error state, where the
//     platform has one.
package platform
