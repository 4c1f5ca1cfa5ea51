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
)

// TestMergeStructMismatchAtMergeLevel checks the low-level
// mergeIndexes entry point (not just MergeInto) rejects mismatched
// indexes.
func TestMergeStructMismatchAtMergeLevel(t *testing.T) {
	e0 := buildString(t, []int32{1, 2, 0})
	e1, err := Build(append([]int32(nil), []int32{1, 0}...), 4, 3, BuildOptions{})

	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	gap := newDenseGap(int(e0.Len()) + 1)

	if _, err := MergeDense(context.Background(), e0, e1, gap, nil, 0); err != ErrStructMismatch {
		t.Fatalf("MergeDense across asize = %v, want ErrStructMismatch", err)
	}
}

// TestDecEncPanicsOnPrematureEOF is the section 7 invariant violation:
// decEnc asking for more symbols than a source has left is an
// unrecoverable bug, not a recoverable error.
func TestDecEncPanicsOnPrematureEOF(t *testing.T) {
	e := buildString(t, []int32{1, 2, 0})
	src := itrBeginDec(e)
	out := Init(6, 3)
	dst := itrBegin2(out)

	var rem uint64
	var sym int32

	defer func() {
		r := recover()

		if r == nil {
			t.Fatalf("expected panic on premature EOF")
		}
	}()

	decEnc(dst, src, &rem, &sym, e.Len()+1)
}
