/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package hash provides the checksum persistence uses to guard the
// packed run payload of a saved index against on-disk corruption.
package hash

import "encoding/binary"

// XXHash64 is Yann Collet's xxHash64, ported from
// https://github.com/Cyan4973/xxHash. persistence seeds it with 0 and
// hashes the whole packed payload once per save/load, so this port
// keeps only that single-shot path (no streaming Write/Reset).
const (
	prime64_1 = uint64(0x9E3779B185EBCA87)
	prime64_2 = uint64(0xC2B2AE3D27D4EB4F)
	prime64_3 = uint64(0x165667B19E3779F9)
	prime64_4 = uint64(0x85EBCA77C2b2AE63)
	prime64_5 = uint64(0x27D4EB2F165667C5)
)

// XXHash64 holds the seed used to hash a single payload.
type XXHash64 struct {
	seed uint64
}

// NewXXHash64 returns a hasher seeded with seed.
func NewXXHash64(seed uint64) *XXHash64 {
	return &XXHash64{seed: seed}
}

// Hash returns the xxHash64 digest of data.
func (h *XXHash64) Hash(data []byte) uint64 {
	end := len(data)
	var h64 uint64
	n := 0

	if end >= 32 {
		end32 := end - 32
		v1 := h.seed + prime64_1 + prime64_2
		v2 := h.seed + prime64_2
		v3 := h.seed
		v4 := h.seed - prime64_1

		for n <= end32 {
			buf := data[n : n+32]
			v1 = xxHash64Round(v1, binary.LittleEndian.Uint64(buf[0:8]))
			v2 = xxHash64Round(v2, binary.LittleEndian.Uint64(buf[8:16]))
			v3 = xxHash64Round(v3, binary.LittleEndian.Uint64(buf[16:24]))
			v4 = xxHash64Round(v4, binary.LittleEndian.Uint64(buf[24:32]))
			n += 32
		}

		h64 = ((v1 << 1) | (v1 >> 63)) + ((v2 << 7) | (v2 >> 57)) +
			((v3 << 12) | (v3 >> 52)) + ((v4 << 18) | (v4 >> 46))

		h64 = xxHash64MergeRound(h64, v1)
		h64 = xxHash64MergeRound(h64, v2)
		h64 = xxHash64MergeRound(h64, v3)
		h64 = xxHash64MergeRound(h64, v4)
	} else {
		h64 = h.seed + prime64_5
	}

	h64 += uint64(end)

	for n+8 <= end {
		h64 ^= xxHash64Round(0, binary.LittleEndian.Uint64(data[n:n+8]))
		h64 = ((h64<<27)|(h64>>37))*prime64_1 + prime64_4
		n += 8
	}

	for n+4 <= end {
		h64 ^= uint64(binary.LittleEndian.Uint32(data[n:n+4])) * prime64_1
		h64 = ((h64<<23)|(h64>>41))*prime64_2 + prime64_3
		n += 4
	}

	for n < end {
		h64 ^= uint64(data[n]) * prime64_5
		h64 = ((h64 << 11) | (h64 >> 53)) * prime64_1
		n++
	}

	h64 ^= h64 >> 33
	h64 *= prime64_2
	h64 ^= h64 >> 29
	h64 *= prime64_3
	return h64 ^ (h64 >> 32)
}

func xxHash64Round(acc, val uint64) uint64 {
	acc += val * prime64_2
	return ((acc << 31) | (acc >> 33)) * prime64_1
}

func xxHash64MergeRound(acc, val uint64) uint64 {
	acc ^= xxHash64Round(0, val)
	return acc*prime64_1 + prime64_4
}
