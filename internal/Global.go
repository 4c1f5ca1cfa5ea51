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

package internal

// ComputeHistogram computes the order 0 histogram of a small-alphabet
// symbol block and returns the per-symbol counts in freqs, which must
// have length >= asize. Every symbol in block is assumed to already be
// in [0, asize). Unrolled the same way as a full byte histogram, just
// bounded by a tiny alphabet instead of 256 symbols.
func ComputeHistogram(block []int32, freqs []uint64, asize int) {
	for i := 0; i < asize; i++ {
		freqs[i] = 0
	}

	end16 := len(block) & -16

	for i := 0; i < end16; {
		d := block[i : i+16]
		freqs[d[0]]++
		freqs[d[1]]++
		freqs[d[2]]++
		freqs[d[3]]++
		freqs[d[4]]++
		freqs[d[5]]++
		freqs[d[6]]++
		freqs[d[7]]++
		freqs[d[8]]++
		freqs[d[9]]++
		freqs[d[10]]++
		freqs[d[11]]++
		freqs[d[12]]++
		freqs[d[13]]++
		freqs[d[14]]++
		freqs[d[15]]++
		i += 16
	}

	for i := end16; i < len(block); i++ {
		freqs[block[i]]++
	}
}
