// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc

import (
	"hash/crc32"
	"hash/crc64"
	"testing"

	"github.com/sigurn/crc16"
	"github.com/sigurn/crc8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossMessages() [][]byte {
	long := make([]byte, 1031)
	for i := range long {
		long[i] = byte(i*7 + i>>3)
	}
	return [][]byte{
		nil,
		{0x00},
		{0xff},
		checkMessage,
		[]byte("The quick brown fox jumps over the lazy dog"),
		long,
	}
}

func TestAgainstStdlibCRC32(t *testing.T) {
	ieee, err := MakeTable(CRC32ISOHDLC)
	require.NoError(t, err)
	castagnoli, err := MakeTable(CRC32ISCSI)
	require.NoError(t, err)
	ct := crc32.MakeTable(crc32.Castagnoli)
	for _, msg := range crossMessages() {
		assert.Equal(t, crc32.ChecksumIEEE(msg), Checksum(msg, ieee))
		assert.Equal(t, crc32.Checksum(msg, ct), Checksum(msg, castagnoli))
	}
}

func TestAgainstStdlibCRC64(t *testing.T) {
	iso, err := MakeTable(CRC64GoISO)
	require.NoError(t, err)
	xz, err := MakeTable(CRC64XZ)
	require.NoError(t, err)
	it := crc64.MakeTable(crc64.ISO)
	et := crc64.MakeTable(crc64.ECMA)
	for _, msg := range crossMessages() {
		assert.Equal(t, crc64.Checksum(msg, it), Checksum(msg, iso))
		assert.Equal(t, crc64.Checksum(msg, et), Checksum(msg, xz))
	}
}

func TestAgainstSigurnCRC16(t *testing.T) {
	for _, tt := range []struct {
		algo   Algorithm[uint16]
		params crc16.Params
	}{
		{CRC16ARC, crc16.Params{Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000, Name: "CRC-16/ARC"}},
		{CRC16Modbus, crc16.Params{Poly: 0x8005, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0x0000, Name: "CRC-16/MODBUS"}},
		{CRC16IBMSDLC, crc16.Params{Poly: 0x1021, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0xffff, Name: "CRC-16/X-25"}},
		{CRC16XModem, crc16.Params{Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000, Name: "CRC-16/XMODEM"}},
	} {
		mine, err := MakeTable(tt.algo)
		require.NoError(t, err)
		theirs := crc16.MakeTable(tt.params)
		for _, msg := range crossMessages() {
			assert.Equal(t, crc16.Checksum(msg, theirs), Checksum(msg, mine), tt.algo.Name)
		}
	}
}

func TestAgainstSigurnCRC8(t *testing.T) {
	for _, tt := range []struct {
		algo   Algorithm[uint8]
		params crc8.Params
	}{
		{CRC8SMBus, crc8.Params{Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00, Name: "CRC-8"}},
		{CRC8MaximDow, crc8.Params{Poly: 0x31, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00, Name: "CRC-8/MAXIM"}},
		{CRC8NRSC5, crc8.Params{Poly: 0x31, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0x00, Name: "CRC-8/NRSC-5"}},
	} {
		mine, err := MakeTable(tt.algo)
		require.NoError(t, err)
		theirs := crc8.MakeTable(tt.params)
		for _, msg := range crossMessages() {
			assert.Equal(t, crc8.Checksum(msg, theirs), Checksum(msg, mine), tt.algo.Name)
		}
	}
}

func TestDigestAgainstStdlibDigest(t *testing.T) {
	tab, err := MakeTable(CRC32ISOHDLC)
	require.NoError(t, err)
	d := New(tab)
	ref := crc32.NewIEEE()
	for _, chunk := range crossMessages() {
		_, err = d.Write(chunk)
		require.NoError(t, err)
		_, err = ref.Write(chunk)
		require.NoError(t, err)
		assert.Equal(t, ref.Sum32(), d.Value())
		assert.Equal(t, ref.Sum(nil), d.Sum(nil))
	}
}
