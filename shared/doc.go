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

// Package shared provides the reference-counted handle that gives ioerr
// errors shared, read-only ownership of an arbitrary causal error.
//
// The handle exists for one reason: identity. Cloned errors must compare
// equal to each other and unequal to independently constructed errors, even
// when the wrapped causes are content-identical. Wrapping the cause in a
// once-allocated Handle and comparing handles by allocation gives exactly
// that, without ever deriving equality from the wrapped error's fields.
//
// This package must remain lightweight: one type, no dependencies beyond
// sync/atomic.
package shared
