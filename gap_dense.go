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
	"time"
)

// ComputeDenseGap walks e1 backwards, LF-mapping every position into
// e0, and returns the dense gap array G indexed by position in e0: the
// number of symbols of e1 that the merge must insert immediately
// after each position of e0 (section 4.3).
//
// Grounded on compute_gap_array from the original fermi implementation:
// each step looks at the symbol the back-trace landed on in e1 (via a
// single Rank2a bulk-rank call) and either walks to the previous
// sentinel of e1 (symbol 0, "end of one of e1's strings") or performs
// one LF-mapping step into e0.
func ComputeDenseGap(ctx context.Context, e0, e1 *Index, listener Listener, verbose int) (*denseGap, error) {
	gap := newDenseGap(int(e0.Len()) + 1)

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
			// No symbol satisfies ok[c] < ol[c]: inside a single-row
			// interval this is structurally impossible (section 4.3
			// step b), so the back-trace state itself is corrupt.
			panic(ErrAssertion)
		}

		if c == 0 {
			// Landed on a sentinel of e1: step to the previous string
			// boundary and restart the walk at the matching sentinel
			// position of e0.
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

func notify(listener Listener, verbose int, evtType int, size int64) {
	if listener == nil || verbose < 2 {
		return
	}

	listener.ProcessEvent(NewEvent(evtType, 0, size, time.Now()))
}
