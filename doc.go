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

// Package ioerr provides a comparable, cheaply clonable I/O error value.
//
// The error values produced by the os, net and syscall packages classify a
// failure and carry its causal chain, but they are not comparable and have
// no sanctioned way to be duplicated. Code that wants to deduplicate
// errors, key retry or cache state on them, or fan one failure out to many
// waiters has to choose between losing the classification and losing the
// cause. ioerr.Error keeps both:
//
//   - it is a value type whose == follows the construction semantics
//     (structural for raw codes and kinds, identity for wrapped causes),
//     making it usable as a map key;
//   - Clone duplicates it in O(1) without copying the wrapped cause, which
//     is held behind a reference-counted, read-only shared handle;
//   - the raw platform code, portable kind and causal chain all remain
//     accessible, and errors.Is / errors.As keep working across the chain.
//
// Classification lives in the kind subpackage, the identity-bearing handle
// in the shared subpackage, and conversions between kinds and transport
// status codes in grpcx and httpx. ioerr performs no I/O itself; it only
// classifies and carries information about failures raised elsewhere.
package ioerr
