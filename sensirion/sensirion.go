// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sensirion implements the word oriented framing shared by Sensirion
// sensors such as the SHT4x and SCD4x families and by lookalikes such as the
// TI HDC302x: every 16 bit word travels most significant byte first,
// immediately followed by a CRC-8 of those two bytes.
package sensirion

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/GermanBionicSystems/crc"
)

// ErrCRC is returned by Words when a triplet fails checksum verification.
var ErrCRC = errors.New("sensirion: invalid crc")

var table = func() *crc.Table[uint8] {
	t, err := crc.MakeTable(crc.CRC8NRSC5)
	if err != nil {
		panic(err)
	}
	return t
}()

// AppendWords appends each word to dst in wire order, big-endian with a
// trailing CRC byte, and returns the extended slice.
func AppendWords(dst []byte, words ...uint16) []byte {
	for _, w := range words {
		dst = append(dst, byte(w>>8), byte(w))
		dst = crc.AppendChecksum(dst, dst[len(dst)-2:], table, binary.BigEndian)
	}
	return dst
}

// Words parses a frame of word plus CRC triplets, verifying every trailer,
// and returns the words in frame order.
func Words(frame []byte) ([]uint16, error) {
	if len(frame)%3 != 0 {
		return nil, fmt.Errorf("sensirion: frame length %d is not a multiple of 3", len(frame))
	}
	words := make([]uint16, 0, len(frame)/3)
	for i := 0; i < len(frame); i += 3 {
		if !crc.IsErrorFree(frame[i:i+3], table, binary.BigEndian) {
			return nil, ErrCRC
		}
		words = append(words, binary.BigEndian.Uint16(frame[i:]))
	}
	return words, nil
}
