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

import "context"

// gapReader abstracts over the dense and sparse gap representations
// for the streaming merge: both answer "how many symbols of e1 get
// inserted immediately after position j of e0".
type gapReader interface {
	get(j uint64) uint64
}

// MergeDense merges e1 into e0 using a precomputed dense gap array.
func MergeDense(ctx context.Context, e0, e1 *Index, gap *denseGap, listener Listener, verbose int) (*Index, error) {
	return mergeIndexes(ctx, e0, e1, gap, listener, verbose)
}

// MergeSparse merges e1 into e0 using a precomputed sparse gap hash.
// Unlike MergeDense, it never visits a zero-gap position explicitly:
// it drives the streaming pass block by block and, within a block, key
// by ascending key, exactly as section 4.4's "Sparse drive" describes
// (the point of the sparse representation is that most positions have
// nothing recorded and should cost nothing to skip).
func MergeSparse(ctx context.Context, e0, e1 *Index, gap *sparseGap, listener Listener, verbose int) (*Index, error) {
	if !e0.sameStructure(e1) {
		return nil, ErrStructMismatch
	}

	out := Init(e0.asize, e0.sbits)
	dst := itrBegin2(out)
	c0 := itrBeginDec(e0)
	c1 := itrBeginDec(e1)

	var rem0, rem1 uint64
	var sym0, sym1 int32

	notify(listener, verbose, EVT_MERGE_START, int64(e0.Len()+e1.Len()))

	n0 := e0.Len()
	last := uint64(0)
	var processed uint64

	for b := 0; b < gap.numBlocks(); b++ {
		for _, off := range gap.sortedOffsets(b) {
			pos := uint64(b)<<gapBlockBits | uint64(off)

			// Catch up through and including pos: the E0 symbol at pos
			// itself is emitted here, before its gap count drains from
			// e1, matching the dense drive's per-slot order below.
			decEnc(dst, c0, &rem0, &sym0, pos-last+1)
			last = pos + 1

			if count := gap.get(pos); count > 0 {
				decEnc(dst, c1, &rem1, &sym1, count)
			}

			processed++
			notifyProgress(listener, verbose, int64(processed))

			if processed%progressMsgSize == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
		}
	}

	if last < n0 {
		decEnc(dst, c0, &rem0, &sym0, n0-last)
	}

	if rem0 != 0 || rem1 != 0 {
		return nil, ErrPendingSymbols
	}

	if l, _ := c0.dec(); l != 0 {
		return nil, ErrPendingSymbols
	}

	if l, _ := c1.dec(); l != 0 {
		return nil, ErrPendingSymbols
	}

	dst.Finish()

	if out.mcnt[0] != e0.mcnt[0]+e1.mcnt[0] {
		return nil, ErrAssertion
	}

	notify(listener, verbose, EVT_MERGE_END, int64(out.Len()))
	return out, nil
}

// mergeIndexes is the streaming merge of section 4.4: one pass over
// the N0+1 gap slots of e0, at each slot first emitting one symbol out
// of e0's decode cursor (except past the last slot, which has none)
// and then draining gap.get(j) symbols out of e1's. Both drains go
// through the coalescing Iterator2 so the result never holds two
// adjacent runs of the same symbol.
//
// Grounded on fm_merge_array / fm_merge_hash in the original
// implementation, which differ only in how the gap value at each slot
// is looked up.
func mergeIndexes(ctx context.Context, e0, e1 *Index, gap gapReader, listener Listener, verbose int) (*Index, error) {
	if !e0.sameStructure(e1) {
		return nil, ErrStructMismatch
	}

	out := Init(e0.asize, e0.sbits)
	dst := itrBegin2(out)
	c0 := itrBeginDec(e0)
	c1 := itrBeginDec(e1)

	var rem0, rem1 uint64
	var sym0, sym1 int32

	notify(listener, verbose, EVT_MERGE_START, int64(e0.Len()+e1.Len()))

	n0 := e0.Len()

	for j := uint64(0); j <= n0; j++ {
		if j < n0 {
			decEnc(dst, c0, &rem0, &sym0, 1)
		}

		if g := gap.get(j); g > 0 {
			decEnc(dst, c1, &rem1, &sym1, g)
		}

		notifyProgress(listener, verbose, int64(j))

		if j%progressMsgSize == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	if rem0 != 0 || rem1 != 0 {
		return nil, ErrPendingSymbols
	}

	if l, _ := c0.dec(); l != 0 {
		return nil, ErrPendingSymbols
	}

	if l, _ := c1.dec(); l != 0 {
		return nil, ErrPendingSymbols
	}

	dst.Finish()

	if out.mcnt[0] != e0.mcnt[0]+e1.mcnt[0] {
		return nil, ErrAssertion
	}

	notify(listener, verbose, EVT_MERGE_END, int64(out.Len()))
	return out, nil
}
