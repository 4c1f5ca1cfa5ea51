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

import lru "github.com/hashicorp/golang-lru/v2"

// sampleRuns is the fixed sampling interval (in runs) at which a rank
// checkpoint is recorded during enc_finish. sbits only affects the
// width of the packed on-disk run fields (see persistence); the
// in-memory run stream below is the logical model the spec's section 3
// explicitly says sbits does not change the semantics of.
const sampleRuns = 64

type run struct {
	length uint64
	symbol int32
}

// rankSample is a checkpoint recorded every sampleRuns runs: the
// cumulative per-symbol counts and position immediately before runs[idx].
type rankSample struct {
	idx int
	pos uint64
	cum []uint64
}

// Index is the RL-BWT index E: asize, asize1, sbits, mcnt, cnt as
// described in section 3, plus the run stream and its rank samples.
type Index struct {
	asize   int
	asize1  int
	sbits   uint
	mcnt    []uint64
	cnt     []uint64
	runs    []run
	samples []rankSample

	finished bool

	// rankCache memoizes rankAll(i) results: the gap computation
	// re-queries nearby positions of the same index repeatedly while
	// tracing back through runs of equal symbols, so a small LRU well
	// outperforms recomputing the same per-symbol scan from the last
	// rank sample every time.
	rankCache *lru.Cache[int64, []uint64]
}

// rankCacheSize bounds the memoized positions; sized for the backward
// LF-mapping walk's locality, not for holding the whole index.
const rankCacheSize = 4096

// Init creates an empty index ready to be filled via ItrBegin/Enc/EncFinish.
func Init(asize int, sbits uint) *Index {
	e := &Index{
		asize:  asize,
		asize1: asize + 1,
		sbits:  sbits,
	}

	e.mcnt = make([]uint64, e.asize1)
	e.cnt = make([]uint64, e.asize1)
	e.rankCache, _ = lru.New[int64, []uint64](rankCacheSize)
	return e
}

// Asize returns the alphabet size A.
func (e *Index) Asize() int {
	return e.asize
}

// Asize1 returns A+1.
func (e *Index) Asize1() int {
	return e.asize1
}

// Sbits returns the run-length bit-packing width parameter.
func (e *Index) Sbits() uint {
	return e.sbits
}

// Mcnt returns the marginal counts: Mcnt()[0] == length of E,
// Mcnt()[c+1] == occurrences of symbol c.
func (e *Index) Mcnt() []uint64 {
	return e.mcnt
}

// Cnt returns the C-array: Cnt()[c] == occurrences of symbols < c.
func (e *Index) Cnt() []uint64 {
	return e.cnt
}

// Len returns the total length N of the BWT string (mcnt[0]).
func (e *Index) Len() uint64 {
	return e.mcnt[0]
}

// NumRuns returns the number of runs in the finalized stream; exposed
// mainly for tests asserting no-adjacent-equal-runs style invariants.
func (e *Index) NumRuns() int {
	return len(e.runs)
}

// sameStructure reports whether e and o share asize and sbits, the
// structural-mismatch precondition for merging (section 7).
func (e *Index) sameStructure(o *Index) bool {
	return e.asize == o.asize && e.sbits == o.sbits
}
