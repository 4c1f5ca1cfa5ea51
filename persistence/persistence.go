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

// Package persistence saves and loads a rlbwt.Index to and from a
// packed binary stream: a small plain-binary header (asize, sbits,
// mcnt) followed by the run stream packed through the bitstream
// package, one (run-length, symbol) pair per fixed-width field pair,
// closed off with an XXHash64 checksum of the packed payload.
package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dnaidx/rlbwt"
	"github.com/dnaidx/rlbwt/bitstream"
	"github.com/dnaidx/rlbwt/hash"
)

const magic = uint32(0x524C4257) // "RLBW"

// maxRunField is the largest run length a single packed field can
// hold at a given sbits; runs longer than this are split into several
// same-symbol chunks on Save and recombined by the decoder's
// coalescing on Load (mirrors how a merge's Iterator2 never produces
// two adjacent same-symbol runs either).
func maxRunField(sbits uint) uint64 {
	return (uint64(1) << sbits) - 1
}

func bitsFor(n int) uint {
	b := uint(1)

	for (uint64(1) << b) < uint64(n) {
		b++
	}

	return b
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type nopReadCloser struct{ io.Reader }

func (nopReadCloser) Close() error { return nil }

// Save writes e to w: a binary header, then the packed run stream,
// then an XXHash64 checksum of the packed payload.
func Save(e *rlbwt.Index, w io.Writer) error {
	runField := maxRunField(e.Sbits())

	// A run longer than runField is split into several same-symbol
	// packed fields (see maxRunField), so the packed field count can
	// exceed NumRuns(); count it with a dry pass before writing the
	// header, since the header must name the exact field count Load
	// will read back.
	var fieldCount uint32

	for cur := rlbwt.NewDecodeCursor(e); ; {
		length, _, ok := cur.Next()

		if !ok {
			break
		}

		chunks := length / runField

		if length%runField != 0 {
			chunks++
		}

		fieldCount += uint32(chunks)
	}

	header := struct {
		Magic  uint32
		Asize  uint32
		Sbits  uint32
		Mcnt0  uint64
		NumRun uint32
	}{
		Magic:  magic,
		Asize:  uint32(e.Asize()),
		Sbits:  uint32(e.Sbits()),
		Mcnt0:  e.Len(),
		NumRun: fieldCount,
	}

	if err := binary.Write(w, binary.BigEndian, &header); err != nil {
		return err
	}

	mcnt := e.Mcnt()

	if err := binary.Write(w, binary.BigEndian, mcnt); err != nil {
		return err
	}

	var payload bytes.Buffer

	obs, err := bitstream.NewDefaultOutputBitStream(nopWriteCloser{&payload}, 1<<16)

	if err != nil {
		return err
	}

	symBits := bitsFor(e.Asize())

	cur := rlbwt.NewDecodeCursor(e)

	for {
		length, symbol, ok := cur.Next()

		if !ok {
			break
		}

		for length > runField {
			obs.WriteBits(runField, e.Sbits())
			obs.WriteBits(uint64(symbol), symBits)
			length -= runField
		}

		obs.WriteBits(length, e.Sbits())
		obs.WriteBits(uint64(symbol), symBits)
	}

	if err := obs.Close(); err != nil {
		return err
	}

	sum := hash.NewXXHash64(0).Hash(payload.Bytes())

	if _, err := w.Write(payload.Bytes()); err != nil {
		return err
	}

	return binary.Write(w, binary.BigEndian, sum)
}

// Load reconstructs an Index previously written by Save.
func Load(r io.Reader) (*rlbwt.Index, error) {
	var header struct {
		Magic  uint32
		Asize  uint32
		Sbits  uint32
		Mcnt0  uint64
		NumRun uint32
	}

	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, err
	}

	if header.Magic != magic {
		return nil, fmt.Errorf("persistence: bad magic %08x", header.Magic)
	}

	mcnt := make([]uint64, header.Asize+1)

	if err := binary.Read(r, binary.BigEndian, mcnt); err != nil {
		return nil, err
	}

	rest, err := io.ReadAll(r)

	if err != nil {
		return nil, err
	}

	if len(rest) < 8 {
		return nil, io.ErrUnexpectedEOF
	}

	payload, wantSum := rest[:len(rest)-8], rest[len(rest)-8:]
	gotSum := binary.BigEndian.Uint64(wantSum)

	if hash.NewXXHash64(0).Hash(payload) != gotSum {
		return nil, fmt.Errorf("persistence: checksum mismatch")
	}

	ibs, err := bitstream.NewDefaultInputBitStream(nopReadCloser{bytes.NewReader(payload)}, 1<<16)

	if err != nil {
		return nil, err
	}

	e := rlbwt.Init(int(header.Asize), uint(header.Sbits))
	it := rlbwt.ItrBegin2(e)
	symBits := bitsFor(int(header.Asize))

	for run := uint32(0); run < header.NumRun; run++ {
		length := ibs.ReadBits(uint(header.Sbits))
		symbol := int32(ibs.ReadBits(symBits))
		it.Enc2(length, symbol)
	}

	it.Finish()

	if _, err := ibs.Close(); err != nil {
		return nil, err
	}

	return e, nil
}

// SaveFile is the common-case wrapper around Save for a file path.
func SaveFile(e *rlbwt.Index, path string) error {
	f, err := os.Create(path)

	if err != nil {
		return err
	}

	defer f.Close()

	if err := Save(e, f); err != nil {
		return err
	}

	return f.Close()
}

// OpenIndex is the common-case wrapper around Load for a file path.
func OpenIndex(path string) (*rlbwt.Index, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Load(f)
}
