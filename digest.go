// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc

import "hash"

// Hash is implemented by the streaming digests returned by New. It extends
// hash.Hash with access to the checksum as a register-sized word.
type Hash[W Word] interface {
	hash.Hash
	// Value returns the checksum of the bytes written so far without
	// changing the digest state.
	Value() W
}

// Digest accumulates a CRC over written bytes. The zero value is not usable;
// obtain one from New. A Digest is not safe for concurrent use: share the
// Table and give each goroutine its own Digest.
type Digest[W Word] struct {
	crc W
	t   *Table[W]
}

var _ Hash[uint32] = &Digest[uint32]{}

// New returns a Digest computing the checksum described by t's algorithm,
// ready to Write immediately.
func New[W Word](t *Table[W]) *Digest[W] {
	return &Digest[W]{crc: t.init, t: t}
}

// Write absorbs p into the running checksum. It never fails.
func (d *Digest[W]) Write(p []byte) (int, error) {
	d.crc = Update(d.crc, d.t, p)
	return len(p), nil
}

// Value returns the checksum of the bytes written so far without changing
// the digest state.
func (d *Digest[W]) Value() W {
	return Complete(d.crc, d.t)
}

// Sum appends the current checksum, most significant byte first, to in and
// returns the result. Like Value it leaves the digest state untouched.
func (d *Digest[W]) Sum(in []byte) []byte {
	return appendWord(in, d.Value(), d.Size(), true)
}

// Reset restores the digest to its state right after New.
func (d *Digest[W]) Reset() {
	d.crc = d.t.init
}

// Size returns the number of bytes Sum appends.
func (d *Digest[W]) Size() int {
	return int(d.t.algo.Width / 8)
}

// BlockSize returns 1; writes of any size are absorbed without buffering.
func (d *Digest[W]) BlockSize() int {
	return 1
}
