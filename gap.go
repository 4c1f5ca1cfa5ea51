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

import "math"

// GapMax is the largest value storable inline in a dense gap cell.
// Larger counts spill into the cell's overflow vector.
const GapMax = int32(math.MaxInt32)

// denseGap is the dense gap array G of section 3/4.3: one tagged
// 32-bit cell per position of E0, with a shared 64-bit overflow vector
// for positions whose count exceeds GapMax. The sign-tag encoding from
// the original implementation is kept (it is what the stated 4*N0
// byte memory profile in section 5 assumes) but is entirely private:
// callers only ever see get/inc, never the raw cell value.
type denseGap struct {
	g        []int32
	overflow []uint64
}

func newDenseGap(n int) *denseGap {
	return &denseGap{g: make([]int32, n)}
}

// inc increments the count stored at position j by one.
func (d *denseGap) inc(j uint64) {
	v := d.g[j]

	switch {
	case v < 0:
		d.overflow[-v-1]++
	case v == GapMax:
		d.overflow = append(d.overflow, uint64(GapMax)+1)
		d.g[j] = -int32(len(d.overflow))
	default:
		d.g[j]++
	}
}

// get returns the count stored at position j.
func (d *denseGap) get(j uint64) uint64 {
	v := d.g[j]

	if v < 0 {
		return d.overflow[-v-1]
	}

	return uint64(v)
}

// sum returns the total of all cells, used by tests to check the
// gap-sum identity (section 8, property 2).
func (d *denseGap) sum() uint64 {
	var total uint64

	for j := range d.g {
		total += d.get(uint64(j))
	}

	return total
}
