// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crc implements parameterized cyclic redundancy checks over 8, 16,
// 24, 32 and 64 bit registers.
//
// A CRC variant is described by an Algorithm value: polynomial, initial
// register, input and output reflection, final xor, plus the published check
// and residue constants used to validate the parameterization. MakeTable
// turns an Algorithm into an immutable Table that any number of goroutines
// can share.
//
// Checksum computes a whole message in one call. Init, Update and Complete
// expose the same computation incrementally, threading the register through
// as a plain value. New wraps a Table in a hash.Hash style digest for code
// that expects the standard streaming interface.
//
// AppendChecksum and IsErrorFree handle the wire side: serializing a checksum
// after its message in a chosen byte order and verifying such a buffer on
// receipt.
//
// Predefined Algorithm values for common variants are in catalog.go. The
// parameters follow the reveng catalogue notation:
// https://reveng.sourceforge.io/crc-catalogue/
//
// The package computes checksums for error detection only. None of the
// algorithms are cryptographic.
package crc
