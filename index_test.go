/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rlbwt

import (
	"context"
	"math/rand"
	"testing"
)

// TestRoundTrip is property 3: decoding every run in order reproduces
// a sequence of length Mcnt()[0] whose per-symbol histogram matches
// Mcnt()[1:].
func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	e := buildString(t, randomStrings(rnd, 30, 50))

	decoded := e.DecodeAll()

	if uint64(len(decoded)) != e.Len() {
		t.Fatalf("len(DecodeAll()) = %d, want Mcnt()[0] = %d", len(decoded), e.Len())
	}

	hist := make([]uint64, e.Asize())

	for _, c := range decoded {
		hist[c]++
	}

	for c, n := range hist {
		if n != e.Mcnt()[c+1] {
			t.Fatalf("histogram[%d] = %d, want Mcnt()[%d] = %d", c, n, c+1, e.Mcnt()[c+1])
		}
	}

	assertNoAdjacentRuns(t, e)
}

// TestMergeOutputNoAdjacentRuns is property 7 applied to a merge
// result: Enc2's coalescing guarantee must hold on the combined index,
// not just on a freshly built one.
func TestMergeOutputNoAdjacentRuns(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	e0 := buildString(t, randomStrings(rnd, 12, 20))
	e1 := buildString(t, randomStrings(rnd, 12, 20))

	merged, err := MergeInto(context.Background(), e0, e1, BuildOptions{})

	if err != nil {
		t.Fatalf("MergeInto: %v", err)
	}

	assertNoAdjacentRuns(t, merged)
}

// TestSameStructure exercises the section 7 structural-mismatch check
// at the Index level directly.
func TestSameStructure(t *testing.T) {
	a := Init(6, 3)
	b := Init(6, 3)
	c := Init(4, 3)
	d := Init(6, 4)

	if !a.sameStructure(b) {
		t.Fatalf("sameStructure: identical asize/sbits reported mismatched")
	}

	if a.sameStructure(c) {
		t.Fatalf("sameStructure: different asize reported matched")
	}

	if a.sameStructure(d) {
		t.Fatalf("sameStructure: different sbits reported matched")
	}
}
