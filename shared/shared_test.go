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

import (
	"errors"
	"sync"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := errors.New("root")
	h := Wrap(cause)

	if h.Err() != cause {
		t.Fatalf("Err() = %v, want %v", h.Err(), cause)
	}
	if got := h.Refs(); got != 1 {
		t.Fatalf("Refs() = %d, want 1", got)
	}
}

func TestWrap_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Wrap(nil) did not panic")
		}
	}()
	Wrap(nil)
}

func TestClone_SameAllocation(t *testing.T) {
	h := Wrap(errors.New("root"))
	c := h.Clone()

	if !Same(h, c) {
		t.Fatal("Clone() returned a different allocation")
	}
	if got := h.Refs(); got != 2 {
		t.Fatalf("Refs() after Clone = %d, want 2", got)
	}
}

func TestRelease(t *testing.T) {
	h := Wrap(errors.New("root"))
	h.Clone()
	h.Release()
	if got := h.Refs(); got != 1 {
		t.Fatalf("Refs() after Release = %d, want 1", got)
	}
	// The wrapped error stays readable for the remaining holder.
	if h.Err() == nil {
		t.Fatal("Err() lost the wrapped error after Release")
	}
}

func TestSame_IdentityNotContent(t *testing.T) {
	cause := errors.New("root")
	a := Wrap(cause)
	b := Wrap(cause)

	if Same(a, b) {
		t.Fatal("independently wrapped handles report the same allocation")
	}
	if !Same(a, a.Clone()) {
		t.Fatal("clone does not report the same allocation as its source")
	}
}

func TestCounter_Concurrent(t *testing.T) {
	const (
		workers = 8
		rounds  = 250
	)
	h := Wrap(errors.New("root"))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				h.Clone().Release()
			}
		}()
	}
	wg.Wait()

	if got := h.Refs(); got != 1 {
		t.Fatalf("Refs() after balanced concurrent use = %d, want 1", got)
	}
}
