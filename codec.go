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

import "sort"

// rankAll returns, for every symbol c, the number of occurrences of c
// in E[0..i] inclusive. i == -1 (the empty prefix) returns all zeros,
// matching the rank2a convention in section 6. One pass over the runs
// since the last sample computes every symbol's count at once, which
// is the "faster than A independent rank11 calls" bulk behavior
// section 4.1 asks for.
func (e *Index) rankAll(i int64) []uint64 {
	out := make([]uint64, e.asize)

	if i < 0 {
		return out
	}

	if e.rankCache != nil {
		if cached, ok := e.rankCache.Get(i); ok {
			copy(out, cached)
			return out
		}
	}

	target := uint64(i)

	// binary search the last sample whose pos <= target
	s := sort.Search(len(e.samples), func(k int) bool {
		return e.samples[k].pos > target
	}) - 1

	if s < 0 {
		s = 0
	}

	sample := e.samples[s]
	copy(out, sample.cum)
	pos := sample.pos

	for idx := sample.idx; idx < len(e.runs); idx++ {
		r := e.runs[idx]

		if pos > target {
			break
		}

		if pos+r.length-1 <= target {
			out[r.symbol] += r.length
			pos += r.length
		} else {
			// partial consumption of this run
			out[r.symbol] += target - pos + 1
			pos += r.length
			break
		}
	}

	if e.rankCache != nil {
		snap := make([]uint64, e.asize)
		copy(snap, out)
		e.rankCache.Add(i, snap)
	}

	return out
}

// Rank11 returns the number of occurrences of symbol c in E[0..i]
// inclusive (section 6).
func (e *Index) Rank11(i int64, c int32) uint64 {
	return e.rankAll(i)[c]
}

// Rank2a fills ok and ol (length asize each) with, respectively, the
// rank of every symbol at k-1 and at l. Passing k-1 == -1 yields
// ok[c] == 0 for every c, the rank of the empty prefix.
func (e *Index) Rank2a(kMinus1, l int64, ok, ol []uint64) {
	copy(ok, e.rankAll(kMinus1))
	copy(ol, e.rankAll(l))
}

// DecodeAll expands the finalized index back into its full symbol
// sequence, used by round-trip tests; not part of the hot build/merge
// path.
func (e *Index) DecodeAll() []int32 {
	out := make([]int32, 0, e.mcnt[0])

	for _, r := range e.runs {
		for k := uint64(0); k < r.length; k++ {
			out = append(out, r.symbol)
		}
	}

	return out
}
