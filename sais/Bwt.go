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

package sais

import "errors"

// BuildBWT overwrites s in place with its Burrows-Wheeler transform,
// such that s[0] is the first symbol of the transformed string. s must
// already be a concatenation of one or more sentinel (0) terminated
// strings over [0, asize); in particular s[len(s)-1] must be 0 (the
// last input string's terminator).
//
// s may contain many occurrences of the sentinel (one per input
// string). Sentinels sort by position: the i-th sentinel of s sorts
// before the (i+1)-th, and every sentinel sorts before every real
// symbol. BuildBWT gets this by giving the i-th sentinel the working
// value i+1, shifting the real alphabet up past the sentinels, and
// appending a single absolute minimum (value 0) past the end of the
// working copy. Since no two sentinels share a value, a suffix
// comparison never runs past a sentinel; the appended position's own
// row is dropped from the output afterwards.
func BuildBWT(s []int32, asize int) error {
	n := len(s)

	if n == 0 {
		return nil
	}

	if s[n-1] != 0 {
		return errors.New("sais: last symbol of s must be the sentinel")
	}

	nsent := 0

	for _, c := range s {
		if c == 0 {
			nsent++
		}
	}

	data := make([]int, n+1)
	sent := 0

	for i, c := range s {
		if c == 0 {
			sent++
			data[i] = sent
		} else {
			data[i] = int(c) + nsent
		}
	}

	data[n] = 0

	sa := make([]int, n+1)
	ComputeSuffixArray(data, sa, 0, n+1, asize+nsent)

	out := make([]int32, 0, n)

	for _, p := range sa {
		if p == n {
			// The appended terminator's own suffix; not part of the
			// real text, drop this row.
			continue
		}

		if p == 0 {
			// Suffix starting at the very first real position: its
			// predecessor is the sentinel that ends the last string,
			// by the same circular convention a single-sentinel BWT
			// uses (s already ends in 0 by precondition).
			out = append(out, s[n-1])
		} else {
			out = append(out, s[p-1])
		}
	}

	copy(s, out)
	return nil
}
