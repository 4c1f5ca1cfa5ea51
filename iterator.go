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

// Iterator is the encoder cursor described in section 3: a handle into
// E's run stream positioned for appends. Building is append-only, so
// the cursor itself carries no extra state beyond which index it
// targets; it exists to mirror the itr_begin/enc/enc_finish contract
// and to forbid Enc calls after EncFinish.
type Iterator struct {
	e *Index
}

// ItrBegin returns a cursor positioned before the first run of e.
func ItrBegin(e *Index) *Iterator {
	return &Iterator{e: e}
}

// Enc appends one run (length, symbol) to e. length must be >= 1.
// Calling Enc after EncFinish is a programming error.
func (it *Iterator) Enc(length uint64, symbol int32) {
	if it.e.finished {
		panic(ErrEncoderFinished)
	}

	if length == 0 {
		panic(ErrAssertion)
	}

	it.e.runs = append(it.e.runs, run{length: length, symbol: symbol})
	it.e.mcnt[symbol+1] += length
	it.e.mcnt[0] += length
}

// EncFinish flushes the iterator, materializes cnt from mcnt and builds
// the rank-sample table. After EncFinish, e is query-ready and further
// Enc calls panic.
func (it *Iterator) EncFinish() {
	e := it.e

	sum := uint64(0)

	for c := 0; c < e.asize; c++ {
		e.cnt[c] = sum
		sum += e.mcnt[c+1]
	}

	e.cnt[e.asize] = sum

	e.samples = make([]rankSample, 0, len(e.runs)/sampleRuns+1)
	cum := make([]uint64, e.asize)
	pos := uint64(0)

	for i, r := range e.runs {
		if i%sampleRuns == 0 {
			snap := make([]uint64, e.asize)
			copy(snap, cum)
			e.samples = append(e.samples, rankSample{idx: i, pos: pos, cum: snap})
		}

		cum[r.symbol] += r.length
		pos += r.length
	}

	e.finished = true
}

// decIterator is the decoder cursor: the index of the next run to
// return from an already finalized index. Mirrors the
// original implementation's rlditr_t, which (unlike the merger's
// coalescing rlditr2_t) carries no pending/held-back symbols - dec
// always returns one full run at a time.
type decIterator struct {
	e      *Index
	runIdx int
}

// itrBeginDec returns a decode cursor positioned before the first run of e.
func itrBeginDec(e *Index) *decIterator {
	return &decIterator{e: e}
}

// dec consumes the next run and returns it. Returns length 0 when the
// stream is exhausted.
func (it *decIterator) dec() (uint64, int32) {
	if it.runIdx >= len(it.e.runs) {
		return 0, 0
	}

	r := it.e.runs[it.runIdx]
	it.runIdx++
	return r.length, r.symbol
}

// DecodeCursor is the exported run-at-a-time reader other packages
// (persistence, in particular) use to walk a finalized index without
// reaching into its private run slice.
type DecodeCursor struct {
	it *decIterator
}

// NewDecodeCursor returns a cursor positioned before e's first run.
func NewDecodeCursor(e *Index) *DecodeCursor {
	return &DecodeCursor{it: itrBeginDec(e)}
}

// Next returns the next run, or ok == false once the stream is exhausted.
func (c *DecodeCursor) Next() (length uint64, symbol int32, ok bool) {
	l, s := c.it.dec()

	if l == 0 {
		return 0, 0, false
	}

	return l, s, true
}
