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

package shared

import "sync/atomic"

// Handle is a shared, immutable, identity-comparable reference to an error.
//
// A Handle is allocated exactly once by Wrap. Clone hands out additional
// references to the *same* allocation, so two handles compare equal with
// Same only when one descends from the other via Clone — never merely
// because the wrapped errors have equal content.
//
// The wrapped error is read-only for every holder. Handles may be passed
// between goroutines freely: the share counter is atomic, and since no
// mutation entry point exists, concurrent reads of the wrapped error need
// no further synchronization (the wrapped error itself must not be mutated
// behind the handle's back).
type Handle struct {
	err  error
	refs atomic.Int64
}

// Wrap allocates a new Handle owning err, with a share count of one.
//
// It panics when err is nil: a handle exists to share a causal error, and a
// nil cause indicates a bug at the call site.
func Wrap(err error) *Handle {
	if err == nil {
		panic("shared: Wrap called with nil error")
	}
	h := &Handle{err: err}
	h.refs.Store(1)
	return h
}

// Clone registers one more holder of the allocation and returns the same
// handle. The wrapped error is never duplicated.
func (h *Handle) Clone() *Handle {
	h.refs.Add(1)
	return h
}

// Release drops one holder's reference.
//
// Memory reclamation is the garbage collector's job in Go, so Release does
// not free anything; the counter records logical ownership and lets tests
// and diagnostics observe sharing. Releasing more times than the handle was
// cloned panics, since it means some holder's accounting is broken.
func (h *Handle) Release() {
	if h.refs.Add(-1) < 0 {
		panic("shared: Release without a matching reference")
	}
}

// Err returns borrowed, read-only access to the wrapped error.
func (h *Handle) Err() error {
	return h.err
}

// Refs returns the current share count.
func (h *Handle) Refs() int64 {
	return h.refs.Load()
}

// Same reports whether a and b refer to the same allocation.
//
// This is identity, not content: two handles wrapping byte-identical errors
// from separate Wrap calls are not the same.
func Same(a, b *Handle) bool {
	return a == b
}
