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

// Iterator2 is the merge-time encoder cursor (section 4.4): unlike
// Iterator.Enc, which appends whatever run the caller hands it, Enc2
// coalesces a run into the pending one when the symbol matches, since
// a merge streams runs from two sources and their boundary very often
// splits what should be a single run in the result.
type Iterator2 struct {
	it      *Iterator
	pendSym int32
	pendLen uint64
	hasPend bool
}

// itrBegin2 returns a coalescing cursor writing into e.
func itrBegin2(e *Index) *Iterator2 {
	return &Iterator2{it: ItrBegin(e)}
}

// ItrBegin2 is the exported form of itrBegin2, for callers outside the
// package (persistence, in particular) that reconstruct a run stream
// from a representation that may have split a logical run across
// several packed fields and need the same no-adjacent-equal-runs
// guarantee Enc2 gives the merge driver.
func ItrBegin2(e *Index) *Iterator2 {
	return itrBegin2(e)
}

// Enc2 appends length occurrences of symbol, merging into the pending
// run when symbol matches it.
func (it *Iterator2) Enc2(length uint64, symbol int32) {
	if length == 0 {
		return
	}

	if it.hasPend && it.pendSym == symbol {
		it.pendLen += length
		return
	}

	it.flush()
	it.pendSym = symbol
	it.pendLen = length
	it.hasPend = true
}

func (it *Iterator2) flush() {
	if it.hasPend {
		it.it.Enc(it.pendLen, it.pendSym)
		it.hasPend = false
		it.pendLen = 0
	}
}

// Finish flushes the pending run and finalizes the underlying index.
func (it *Iterator2) Finish() {
	it.flush()
	it.it.EncFinish()
}

// decEnc consumes exactly n symbols from src into dst, coalescing
// across run boundaries of src. *rem/*sym hold the source run
// currently being split across calls; this state belongs to the
// caller (the merge driver), not to decIterator itself, mirroring how
// the original implementation threads l0/c0 as plain locals through
// its merge loop rather than storing them in the decode cursor.
//
// Grounded on dec_enc in the original implementation.
func decEnc(dst *Iterator2, src *decIterator, rem *uint64, sym *int32, n uint64) {
	for n > 0 {
		if *rem == 0 {
			l, s := src.dec()

			if l == 0 {
				panic(ErrPrematureEOF)
			}

			*rem = l
			*sym = s
		}

		take := n

		if take > *rem {
			take = *rem
		}

		dst.Enc2(take, *sym)
		*rem -= take
		n -= take
	}
}
