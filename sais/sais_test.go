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

package sais

import "testing"

// TestBuildBWTSingleString checks BuildBWT against the hand-derived
// BWT of "ACGT$" (spec scenario S1): sorting the five rotations of
// "ACGT$" by suffix gives the row order $, ACGT$, CGT$, GT$, T$, whose
// last column is T $ A C G.
func TestBuildBWTSingleString(t *testing.T) {
	s := []int32{1, 2, 3, 4, 0} // A C G T $

	if err := BuildBWT(s, 6); err != nil {
		t.Fatalf("BuildBWT: %v", err)
	}

	want := []int32{4, 0, 1, 2, 3} // T $ A C G
	if !equal(s, want) {
		t.Fatalf("BuildBWT(ACGT$) = %v, want %v", s, want)
	}
}

// TestBuildBWTRepeat checks BuildBWT against "AAAA$" (spec scenario
// S2): every rotation but the sentinel-led one shares the same run of
// A's, so the transform must preserve the symbol histogram exactly
// (four A's, one sentinel) regardless of row order.
func TestBuildBWTRepeat(t *testing.T) {
	s := []int32{1, 1, 1, 1, 0}

	if err := BuildBWT(s, 6); err != nil {
		t.Fatalf("BuildBWT: %v", err)
	}

	var sentinels, as int

	for _, c := range s {
		switch c {
		case 0:
			sentinels++
		case 1:
			as++
		default:
			t.Fatalf("unexpected symbol %d in BWT(AAAA$) = %v", c, s)
		}
	}

	if sentinels != 1 || as != 4 {
		t.Fatalf("BWT(AAAA$) = %v, want 1 sentinel and 4 A's", s)
	}
}

// TestBuildBWTTwoStrings checks that a concatenation of two
// sentinel-terminated strings (section 3: "every sentinel is distinct
// in the suffix order by position") round-trips through the same
// count of each symbol it started with.
func TestBuildBWTTwoStrings(t *testing.T) {
	s := []int32{1, 2, 0, 3, 4, 0} // AC$ GT$

	if err := BuildBWT(s, 6); err != nil {
		t.Fatalf("BuildBWT: %v", err)
	}

	counts := map[int32]int{}

	for _, c := range s {
		counts[c]++
	}

	want := map[int32]int{0: 2, 1: 1, 2: 1, 3: 1, 4: 1}

	for sym, n := range want {
		if counts[sym] != n {
			t.Fatalf("BuildBWT(AC$GT$) histogram[%d] = %d, want %d", sym, counts[sym], n)
		}
	}
}

func TestBuildBWTEmpty(t *testing.T) {
	var s []int32

	if err := BuildBWT(s, 6); err != nil {
		t.Fatalf("BuildBWT(empty): %v", err)
	}
}

func TestBuildBWTMissingSentinel(t *testing.T) {
	s := []int32{1, 2, 3}

	if err := BuildBWT(s, 6); err == nil {
		t.Fatalf("BuildBWT: expected error for a buffer not ending in the sentinel")
	}
}

func equal(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
