// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc

import (
	"fmt"
	"math/bits"
)

// Word is the set of register types a CRC can run on. The register type may
// be wider than the algorithm; see Algorithm.Width.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Algorithm describes one CRC parameterization in the notation of the reveng
// catalogue.
//
// All constants are right-aligned: only the low Width bits may be set,
// regardless of how wide the register type W is. An algorithm narrower than
// its register type, such as a 24 bit CRC in a uint32, behaves exactly like
// the same algorithm in a hypothetical 24 bit integer.
type Algorithm[W Word] struct {
	// Name identifies the variant, e.g. "CRC-16/MODBUS". Informational.
	Name string
	// Width is the register width in bits. It must be a multiple of 8
	// between 8 and the size of W.
	Width uint8
	// Poly is the generator polynomial with the implicit leading term
	// omitted, in normal (unreflected) bit order.
	Poly W
	// Init is the register value before any input, in unreflected bit
	// order even when RefIn is set.
	Init W
	// RefIn processes each input byte least significant bit first.
	RefIn bool
	// RefOut bit-reverses the register before XorOut is applied.
	RefOut bool
	// XorOut is xored into the register to form the final checksum.
	XorOut W
	// Check is the checksum of the ASCII bytes "123456789". MakeTable
	// recomputes it to catch transcription errors in the other fields.
	Check W
	// Residue is the register value, after the RefOut step but before
	// XorOut, that remains after processing an error free message
	// followed by its checksum in the algorithm's natural byte order.
	Residue W
}

// wordBits returns the size of the register type in bits.
func wordBits[W Word]() uint8 {
	return uint8(bits.Len64(uint64(^W(0))))
}

// reverse returns v with its low width bits in reverse order.
func reverse[W Word](v W, width uint8) W {
	return W(bits.Reverse64(uint64(v)) >> (64 - uint(width)))
}

func (a Algorithm[W]) label() string {
	if a.Name == "" {
		return "algorithm"
	}
	return a.Name
}

// validate checks Width and the right-alignment of every constant.
func (a Algorithm[W]) validate() error {
	if a.Width == 0 || a.Width%8 != 0 {
		return fmt.Errorf("crc: %s: width %d is not a multiple of 8", a.label(), a.Width)
	}
	if n := wordBits[W](); a.Width > n {
		return fmt.Errorf("crc: %s: width %d does not fit the %d bit register type", a.label(), a.Width, n)
	}
	mask := ^W(0) >> (wordBits[W]() - a.Width)
	for _, c := range [...]struct {
		field string
		v     W
	}{
		{"poly", a.Poly},
		{"init", a.Init},
		{"xorout", a.XorOut},
		{"check", a.Check},
		{"residue", a.Residue},
	} {
		if c.v&^mask != 0 {
			return fmt.Errorf("crc: %s: %s %#x has bits above width %d", a.label(), c.field, uint64(c.v), a.Width)
		}
	}
	return nil
}
