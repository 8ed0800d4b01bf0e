// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc

import "fmt"

// checkMessage is the input every published check value refers to.
var checkMessage = []byte("123456789")

// Table is the precomputed form of one Algorithm. It is immutable once built
// and safe for concurrent use by multiple goroutines.
type Table[W Word] struct {
	algo    Algorithm[W]
	entries [256]W
	init    W     // register seed, reflected when algo.RefIn is set
	mask    W     // low algo.Width bits
	shift   uint8 // algo.Width - 8
}

// Algorithm returns a copy of the descriptor the table was built from.
func (t *Table[W]) Algorithm() Algorithm[W] {
	return t.algo
}

// MakeTable precomputes the byte-at-a-time lookup table for algo.
//
// It fails if Width is not a multiple of 8 that fits the register type, if
// any constant has bits above Width, or if the descriptor's Check does not
// match the checksum of "123456789" computed from the other fields. The last
// test catches most transcription mistakes in hand-written descriptors; the
// error reports the computed value.
func MakeTable[W Word](algo Algorithm[W]) (*Table[W], error) {
	if err := algo.validate(); err != nil {
		return nil, err
	}
	t := &Table[W]{algo: algo}
	t.mask = ^W(0) >> (wordBits[W]() - algo.Width)
	t.shift = algo.Width - 8
	if algo.RefIn {
		t.init = reverse(algo.Init, algo.Width)
		poly := reverse(algo.Poly, algo.Width)
		for i := range t.entries {
			c := W(i)
			for range 8 {
				if c&1 != 0 {
					c = c>>1 ^ poly
				} else {
					c >>= 1
				}
			}
			t.entries[i] = c
		}
	} else {
		t.init = algo.Init
		top := W(1) << (algo.Width - 1)
		for i := range t.entries {
			c := W(i) << t.shift
			for range 8 {
				if c&top != 0 {
					c = (c<<1 ^ algo.Poly) & t.mask
				} else {
					c = c << 1 & t.mask
				}
			}
			t.entries[i] = c
		}
	}
	if got := Checksum(checkMessage, t); got != algo.Check {
		return nil, fmt.Errorf("crc: %s: check mismatch: computed %#x, descriptor has %#x", algo.label(), uint64(got), uint64(algo.Check))
	}
	return t, nil
}

// Init returns the register value that starts a computation over t.
func Init[W Word](t *Table[W]) W {
	return t.init
}

// Update returns the register crc advanced over p. The register must come
// from Init or a previous Update with the same table.
func Update[W Word](crc W, t *Table[W], p []byte) W {
	if t.algo.RefIn {
		for _, b := range p {
			crc = t.entries[byte(crc)^b] ^ crc>>8
		}
		return crc
	}
	for _, b := range p {
		crc = t.entries[byte(crc>>t.shift)^b] ^ crc<<8&t.mask
	}
	return crc
}

// Complete maps an accumulated register to the public checksum. It does not
// modify the register, so a computation may continue after its checksum has
// been read.
func Complete[W Word](crc W, t *Table[W]) W {
	if t.algo.RefIn != t.algo.RefOut {
		crc = reverse(crc, t.algo.Width)
	}
	return (crc ^ t.algo.XorOut) & t.mask
}

// Checksum returns the CRC of data.
func Checksum[W Word](data []byte, t *Table[W]) W {
	return Complete(Update(Init(t), t, data), t)
}
