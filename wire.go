// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc

import (
	"bytes"
	"encoding/binary"
)

// bigEndian reports whether order serializes the most significant byte
// first. Probing keeps the package agnostic to which ByteOrder
// implementation the caller passes, including binary.NativeEndian.
func bigEndian(order binary.ByteOrder) bool {
	var probe [2]byte
	order.PutUint16(probe[:], 0x0100)
	return probe[0] == 0x01
}

// appendWord appends the low n bytes of v to dst.
func appendWord[W Word](dst []byte, v W, n int, big bool) []byte {
	for i := range n {
		shift := 8 * i
		if big {
			shift = 8 * (n - 1 - i)
		}
		dst = append(dst, byte(v>>shift))
	}
	return dst
}

// AppendChecksum appends the checksum of data to dst in the given byte order
// and returns the extended slice. data is read before dst grows, so passing a
// frame as both arguments seals it in place; IsErrorFree accepts the result
// with the same table and order.
func AppendChecksum[W Word](dst, data []byte, t *Table[W], order binary.ByteOrder) []byte {
	return appendWord(dst, Checksum(data, t), int(t.algo.Width/8), bigEndian(order))
}

// residueOf maps an accumulated register to the quantity Algorithm.Residue
// describes: the RefOut adjustment is applied but XorOut is not.
func residueOf[W Word](crc W, t *Table[W]) W {
	if t.algo.RefIn != t.algo.RefOut {
		crc = reverse(crc, t.algo.Width)
	}
	return crc
}

// IsErrorFree reports whether buf, a message followed by its checksum in the
// given byte order, passes verification.
//
// In the algorithm's natural order, little-endian when RefIn is set and
// big-endian otherwise, the whole buffer is folded through the register and
// the result compared against Residue. In the opposite order no fixed
// residue exists, so the message checksum is recomputed and compared to the
// trailer bytes. Both paths accept exactly the buffers AppendChecksum
// produces with the same table and order.
func IsErrorFree[W Word](buf []byte, t *Table[W], order binary.ByteOrder) bool {
	n := int(t.algo.Width / 8)
	if len(buf) < n {
		return false
	}
	big := bigEndian(order)
	if big == t.algo.RefIn {
		want := appendWord(nil, Checksum(buf[:len(buf)-n], t), n, big)
		return bytes.Equal(want, buf[len(buf)-n:])
	}
	return residueOf(Update(Init(t), t, buf), t) == t.algo.Residue
}
