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

import "github.com/dnaidx/rlbwt/internal"

// EncodeBWT packs s, a buffer already holding the BWT output of some
// BwtBuilder (s[0] is the transform's first symbol), into a fresh
// run-length-encoded index. The empty buffer produces an empty index
// with every mcnt entry at zero rather than an error (section 4.2).
//
// Grounded on fm_bwtenc in the original implementation.
func EncodeBWT(s []int32, asize int, sbits uint) *Index {
	e := Init(asize, sbits)
	it := ItrBegin(e)

	if len(s) == 0 {
		it.EncFinish()
		return e
	}

	hist := make([]uint64, asize)
	internal.ComputeHistogram(s, hist, asize)

	k := uint64(1)
	c := s[0]

	for i := 1; i < len(s); i++ {
		if s[i] != c {
			it.Enc(k, c)
			c = s[i]
			k = 1
		} else {
			k++
		}
	}

	it.Enc(k, c)
	it.EncFinish()

	// Section 8 property 1 (count conservation): the coalescing scan
	// above and an order-0 histogram taken before it must agree on
	// every symbol's occurrence count.
	for c := 0; c < asize; c++ {
		if e.mcnt[c+1] != hist[c] {
			panic(ErrAssertion)
		}
	}

	return e
}
