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

	"golang.org/x/exp/slices"
)

// gapBlockBits is B in section 3: each hash block covers 1<<gapBlockBits
// consecutive positions of e0.
const gapBlockBits = 16

// sparseGap is the sparse gap representation H: one map per block,
// keyed by in-block offset. MergeInto uses it instead of the dense
// array when a dense array would exceed sparseThresholdBytes or when
// ForceSparse is set; it pays off when N1 is much smaller than N0
// (most insertion positions never get a nonzero gap, so a dense
// 4*N0-byte array would be mostly wasted zeros).
type sparseGap struct {
	n0     int
	blocks []map[uint32]uint64
}

func newSparseGap(n0 int) *sparseGap {
	numBlocks := (n0 >> gapBlockBits) + 1
	return &sparseGap{n0: n0, blocks: make([]map[uint32]uint64, numBlocks)}
}

func (s *sparseGap) inc(j uint64) {
	b := j >> gapBlockBits
	off := uint32(j & ((1 << gapBlockBits) - 1))

	if s.blocks[b] == nil {
		s.blocks[b] = make(map[uint32]uint64)
	}

	s.blocks[b][off]++
}

func (s *sparseGap) get(j uint64) uint64 {
	b := j >> gapBlockBits
	off := uint32(j & ((1 << gapBlockBits) - 1))

	if s.blocks[b] == nil {
		return 0
	}

	return s.blocks[b][off]
}

// sortedOffsets returns the populated offsets of block b in ascending
// order, the order the streaming merge consumes a block's entries in.
func (s *sparseGap) sortedOffsets(b int) []uint32 {
	blk := s.blocks[b]

	if len(blk) == 0 {
		return nil
	}

	offs := make([]uint32, 0, len(blk))

	for off := range blk {
		offs = append(offs, off)
	}

	slices.Sort(offs)
	return offs
}

func (s *sparseGap) numBlocks() int {
	return len(s.blocks)
}

// ComputeSparseGap is the hash-backed twin of ComputeDenseGap: the same
// backward LF-mapping walk over e1, but every increment lands in a
// per-block hash map instead of a flat array (section 4.3, sparse
// variant; grounded on compute_gap_hash in the original implementation).
func ComputeSparseGap(ctx context.Context, e0, e1 *Index, listener Listener, verbose int) (*sparseGap, error) {
	gap := newSparseGap(int(e0.Len()) + 1)

	if e1.Len() == 0 {
		return gap, nil
	}

	notify(listener, verbose, EVT_GAP_START, int64(e1.Len()))

	ok := make([]uint64, e1.asize)
	ol := make([]uint64, e1.asize)

	x := e1.mcnt[1] - 1
	k, l := x, x
	i := e0.mcnt[1] - 1
	j := i

	gap.inc(j)

	var processed uint64

	for {
		e1.Rank2a(int64(k)-1, int64(l), ok, ol)

		c := int32(-1)

		for sym := 0; sym < e1.asize; sym++ {
			if ok[sym] < ol[sym] {
				c = int32(sym)
				break
			}
		}

		if c == -1 {
			// Structurally impossible inside a single-row interval
			// (section 4.3 step b); see ComputeDenseGap's twin check.
			panic(ErrAssertion)
		}

		if c == 0 {
			j = e0.mcnt[1] - 1
			i = j

			if x == 0 {
				break
			}

			x--
			k, l = x, x
		} else {
			j = e0.cnt[c] + e0.Rank11(int64(i), c) - 1
			k = e1.cnt[c] + ok[c]
			l = k
			i = j
		}

		gap.inc(j)

		processed++
		notifyProgress(listener, verbose, int64(processed))

		if processed%progressMsgSize == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	notify(listener, verbose, EVT_GAP_END, int64(e1.Len()))
	return gap, nil
}
