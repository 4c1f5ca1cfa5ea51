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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildString(t *testing.T, s []int32) *Index {
	t.Helper()
	cp := append([]int32(nil), s...)
	e, err := Build6(cp, BuildOptions{})

	if err != nil {
		t.Fatalf("Build6(%v): %v", s, err)
	}

	return e
}

// TestMergeEquivalence is scenario S3: building "AC$" and "GT$"
// separately and merging them must equal building "AC$GT$" directly,
// with mcnt[1] == 2 (one sentinel per source string).
func TestMergeEquivalence(t *testing.T) {
	e0 := buildString(t, []int32{1, 2, 0}) // AC$
	e1 := buildString(t, []int32{3, 4, 0}) // GT$

	merged, err := MergeInto(context.Background(), e0, e1, BuildOptions{})

	if err != nil {
		t.Fatalf("MergeInto: %v", err)
	}

	direct := buildString(t, []int32{1, 2, 0, 3, 4, 0}) // AC$GT$

	if diff := cmp.Diff(direct.Mcnt(), merged.Mcnt()); diff != "" {
		t.Fatalf("Mcnt() mismatch (-direct +merged):\n%s", diff)
	}

	if diff := cmp.Diff(direct.DecodeAll(), merged.DecodeAll()); diff != "" {
		t.Fatalf("DecodeAll() mismatch (-direct +merged):\n%s", diff)
	}

	if merged.Mcnt()[1] != 2 {
		t.Fatalf("Mcnt()[1] = %d, want 2 sentinels", merged.Mcnt()[1])
	}
}

// TestMergeEmptyRight is scenario S6: merging e0 with an empty e1
// returns e0 unchanged (by value).
func TestMergeEmptyRight(t *testing.T) {
	e0 := buildString(t, []int32{1, 2, 3, 4, 0})
	e1 := EncodeBWT(nil, 6, 3)

	merged, err := MergeInto(context.Background(), e0, e1, BuildOptions{})

	if err != nil {
		t.Fatalf("MergeInto: %v", err)
	}

	if diff := cmp.Diff(e0.Mcnt(), merged.Mcnt()); diff != "" {
		t.Fatalf("Mcnt() mismatch (-e0 +merged):\n%s", diff)
	}

	if diff := cmp.Diff(e0.DecodeAll(), merged.DecodeAll()); diff != "" {
		t.Fatalf("DecodeAll() mismatch (-e0 +merged):\n%s", diff)
	}
}

// TestAppendAssociativity is property 5: build(build(nil, s1), s2) ==
// build(nil, s1 . s2) in mcnt and expanded BWT.
func TestAppendAssociativity(t *testing.T) {
	s1 := []int32{1, 2, 3, 0}    // ACG$
	s2 := []int32{4, 1, 1, 0}    // TAA$
	concat := append(append([]int32(nil), s1...), s2...)

	e0, err := Build6(append([]int32(nil), s1...), BuildOptions{})

	if err != nil {
		t.Fatalf("Build6(s1): %v", err)
	}

	appended, err := Append(context.Background(), e0, append([]int32(nil), s2...), 6, 3, BuildOptions{})

	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	direct, err := Build6(concat, BuildOptions{})

	if err != nil {
		t.Fatalf("Build6(s1.s2): %v", err)
	}

	if diff := cmp.Diff(direct.Mcnt(), appended.Mcnt()); diff != "" {
		t.Fatalf("Mcnt() mismatch (-direct +appended):\n%s", diff)
	}

	if diff := cmp.Diff(direct.DecodeAll(), appended.DecodeAll()); diff != "" {
		t.Fatalf("DecodeAll() mismatch (-direct +appended):\n%s", diff)
	}
}

// TestAppendCountConservation is property 1: the combined length
// equals e0.Mcnt()[0] + L.
func TestAppendCountConservation(t *testing.T) {
	e0 := buildString(t, []int32{1, 2, 0})
	before := e0.Mcnt()[0]

	merged, err := Append(context.Background(), e0, []int32{3, 4, 0}, 6, 3, BuildOptions{})

	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if merged.Mcnt()[0] != before+3 {
		t.Fatalf("Mcnt()[0] = %d, want %d", merged.Mcnt()[0], before+3)
	}
}

// TestMergeStructMismatch is the section 7 structural-mismatch error:
// merging indexes built with different asize must fail fast.
func TestMergeStructMismatch(t *testing.T) {
	e0 := buildString(t, []int32{1, 2, 0})
	e1, err := Build(append([]int32(nil), []int32{1, 2, 0}...), 4, 3, BuildOptions{})

	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := MergeInto(context.Background(), e0, e1, BuildOptions{}); err != ErrStructMismatch {
		t.Fatalf("MergeInto across asize = %v, want ErrStructMismatch", err)
	}
}

// TestMergeForceSparseMatchesDense is scenario S4 driven through the
// public Build6/MergeInto entry points rather than the gap computers
// directly (see gap_test.go for the lower-level dense/sparse parity
// check over a larger random corpus).
func TestMergeForceSparseMatchesDense(t *testing.T) {
	e0 := buildString(t, []int32{1, 2, 3, 0, 2, 1, 0})
	e1 := buildString(t, []int32{3, 4, 1, 0, 2, 2, 0})

	dense, err := MergeInto(context.Background(), e0, e1, BuildOptions{})

	if err != nil {
		t.Fatalf("MergeInto dense: %v", err)
	}

	sparse, err := MergeInto(context.Background(), e0, e1, BuildOptions{ForceSparse: true})

	if err != nil {
		t.Fatalf("MergeInto sparse: %v", err)
	}

	if diff := cmp.Diff(dense.Mcnt(), sparse.Mcnt()); diff != "" {
		t.Fatalf("Mcnt() mismatch (-dense +sparse):\n%s", diff)
	}

	if diff := cmp.Diff(dense.DecodeAll(), sparse.DecodeAll()); diff != "" {
		t.Fatalf("DecodeAll() mismatch (-dense +sparse):\n%s", diff)
	}
}
