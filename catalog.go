// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc

// Predefined algorithms, named and parameterized as in the reveng catalogue:
// https://reveng.sourceforge.io/crc-catalogue/
//
// Build them with MakeTable, which re-verifies each Check constant.

// CRC8SMBus is the plain polynomial 0x07 CRC used by SMBus PEC and ATM HEC.
var CRC8SMBus = Algorithm[uint8]{
	Name:  "CRC-8/SMBUS",
	Width: 8,
	Poly:  0x07,
	Check: 0xf4,
}

// CRC8MaximDow is the 1-Wire bus checksum, covering the ROM code and
// scratchpad of DS18B20 class devices.
var CRC8MaximDow = Algorithm[uint8]{
	Name:   "CRC-8/MAXIM-DOW",
	Width:  8,
	Poly:   0x31,
	RefIn:  true,
	RefOut: true,
	Check:  0xa1,
}

// CRC8NRSC5 guards the two byte words of Sensirion sensor transactions,
// among others. See the sensirion subpackage for that framing.
var CRC8NRSC5 = Algorithm[uint8]{
	Name:  "CRC-8/NRSC-5",
	Width: 8,
	Poly:  0x31,
	Init:  0xff,
	Check: 0xf7,
}

var CRC8ROHC = Algorithm[uint8]{
	Name:   "CRC-8/ROHC",
	Width:  8,
	Poly:   0x07,
	Init:   0xff,
	RefIn:  true,
	RefOut: true,
	Check:  0xd0,
}

var CRC8Bluetooth = Algorithm[uint8]{
	Name:   "CRC-8/BLUETOOTH",
	Width:  8,
	Poly:   0xa7,
	RefIn:  true,
	RefOut: true,
	Check:  0x26,
}

// CRC8I4321 is the ITU-T I.432.1 HEC. Its nonzero XorOut gives it a nonzero
// residue.
var CRC8I4321 = Algorithm[uint8]{
	Name:    "CRC-8/I-432-1",
	Width:   8,
	Poly:    0x07,
	XorOut:  0x55,
	Check:   0xa1,
	Residue: 0xac,
}

var CRC8CDMA2000 = Algorithm[uint8]{
	Name:  "CRC-8/CDMA2000",
	Width: 8,
	Poly:  0x9b,
	Init:  0xff,
	Check: 0xda,
}

// CRC16ARC is the original ARPA/LHA CRC-16, often called just "CRC-16".
var CRC16ARC = Algorithm[uint16]{
	Name:   "CRC-16/ARC",
	Width:  16,
	Poly:   0x8005,
	RefIn:  true,
	RefOut: true,
	Check:  0xbb3d,
}

// CRC16Modbus covers Modbus RTU frames and derived sensor protocols such as
// the AM2320 humidity sensor, which both append it little-endian.
var CRC16Modbus = Algorithm[uint16]{
	Name:   "CRC-16/MODBUS",
	Width:  16,
	Poly:   0x8005,
	Init:   0xffff,
	RefIn:  true,
	RefOut: true,
	Check:  0x4b37,
}

var CRC16USB = Algorithm[uint16]{
	Name:    "CRC-16/USB",
	Width:   16,
	Poly:    0x8005,
	Init:    0xffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffff,
	Check:   0xb4c8,
	Residue: 0xb001,
}

// CRC16Kermit is the reflected CCITT CRC, also listed as CRC-16/CCITT and
// CRC-16/V-41-LSB.
var CRC16Kermit = Algorithm[uint16]{
	Name:   "CRC-16/KERMIT",
	Width:  16,
	Poly:   0x1021,
	RefIn:  true,
	RefOut: true,
	Check:  0x2189,
}

// CRC16IBMSDLC is the HDLC frame check sequence, also known as X-25 and
// CRC-B in the ISO 14443 sense.
var CRC16IBMSDLC = Algorithm[uint16]{
	Name:    "CRC-16/IBM-SDLC",
	Width:   16,
	Poly:    0x1021,
	Init:    0xffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffff,
	Check:   0x906e,
	Residue: 0xf0b8,
}

var CRC16XModem = Algorithm[uint16]{
	Name:  "CRC-16/XMODEM",
	Width: 16,
	Poly:  0x1021,
	Check: 0x31c3,
}

// CRC16IBM3740 is frequently, if inaccurately, called CRC-16/CCITT-FALSE.
var CRC16IBM3740 = Algorithm[uint16]{
	Name:  "CRC-16/IBM-3740",
	Width: 16,
	Poly:  0x1021,
	Init:  0xffff,
	Check: 0x29b1,
}

var CRC16GSM = Algorithm[uint16]{
	Name:    "CRC-16/GSM",
	Width:   16,
	Poly:    0x1021,
	XorOut:  0xffff,
	Check:   0xce3c,
	Residue: 0x1d0f,
}

var CRC16MCRF4XX = Algorithm[uint16]{
	Name:   "CRC-16/MCRF4XX",
	Width:  16,
	Poly:   0x1021,
	Init:   0xffff,
	RefIn:  true,
	RefOut: true,
	Check:  0x6f91,
}

var CRC16SpiFujitsu = Algorithm[uint16]{
	Name:  "CRC-16/SPI-FUJITSU",
	Width: 16,
	Poly:  0x1021,
	Init:  0x1d0f,
	Check: 0xe5cc,
}

// CRC16T10DIF protects SCSI data integrity fields.
var CRC16T10DIF = Algorithm[uint16]{
	Name:  "CRC-16/T10-DIF",
	Width: 16,
	Poly:  0x8bb7,
	Check: 0xd0db,
}

// CRC24OpenPGP is the radix-64 armor checksum of RFC 4880. It runs in a
// uint32 register with Width 24.
var CRC24OpenPGP = Algorithm[uint32]{
	Name:  "CRC-24/OPENPGP",
	Width: 24,
	Poly:  0x864cfb,
	Init:  0xb704ce,
	Check: 0x21cf02,
}

// CRC24BLE covers Bluetooth Low Energy packets.
var CRC24BLE = Algorithm[uint32]{
	Name:   "CRC-24/BLE",
	Width:  24,
	Poly:   0x00065b,
	Init:   0x555555,
	RefIn:  true,
	RefOut: true,
	Check:  0xc25a56,
}

var CRC32AIXM = Algorithm[uint32]{
	Name:  "CRC-32/AIXM",
	Width: 32,
	Poly:  0x814141ab,
	Check: 0x3010bf7f,
}

var CRC32Autosar = Algorithm[uint32]{
	Name:    "CRC-32/AUTOSAR",
	Width:   32,
	Poly:    0xf4acfb13,
	Init:    0xffffffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffffffff,
	Check:   0x1697d06a,
	Residue: 0x904cddbf,
}

var CRC32Base91D = Algorithm[uint32]{
	Name:    "CRC-32/BASE91-D",
	Width:   32,
	Poly:    0xa833982b,
	Init:    0xffffffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffffffff,
	Check:   0x87315576,
	Residue: 0x45270551,
}

var CRC32BZip2 = Algorithm[uint32]{
	Name:    "CRC-32/BZIP2",
	Width:   32,
	Poly:    0x04c11db7,
	Init:    0xffffffff,
	XorOut:  0xffffffff,
	Check:   0xfc891918,
	Residue: 0xc704dd7b,
}

var CRC32CDROMEDC = Algorithm[uint32]{
	Name:   "CRC-32/CD-ROM-EDC",
	Width:  32,
	Poly:   0x8001801b,
	RefIn:  true,
	RefOut: true,
	Check:  0x6ec2edc4,
}

// CRC32Cksum matches the POSIX cksum utility over the data bytes, before
// cksum's length suffix is folded in.
var CRC32Cksum = Algorithm[uint32]{
	Name:    "CRC-32/CKSUM",
	Width:   32,
	Poly:    0x04c11db7,
	XorOut:  0xffffffff,
	Check:   0x765e7680,
	Residue: 0xc704dd7b,
}

// CRC32ISCSI is the Castagnoli polynomial used by iSCSI, ext4 and SCTP,
// crc32.Castagnoli in the standard library.
var CRC32ISCSI = Algorithm[uint32]{
	Name:    "CRC-32/ISCSI",
	Width:   32,
	Poly:    0x1edc6f41,
	Init:    0xffffffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffffffff,
	Check:   0xe3069283,
	Residue: 0xb798b438,
}

// CRC32ISOHDLC is the ubiquitous zlib, PNG and Ethernet CRC-32, crc32.IEEE
// in the standard library.
var CRC32ISOHDLC = Algorithm[uint32]{
	Name:    "CRC-32/ISO-HDLC",
	Width:   32,
	Poly:    0x04c11db7,
	Init:    0xffffffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffffffff,
	Check:   0xcbf43926,
	Residue: 0xdebb20e3,
}

// CRC32JAMCRC is CRC32ISOHDLC without the final inversion.
var CRC32JAMCRC = Algorithm[uint32]{
	Name:   "CRC-32/JAMCRC",
	Width:  32,
	Poly:   0x04c11db7,
	Init:   0xffffffff,
	RefIn:  true,
	RefOut: true,
	Check:  0x340bc6d9,
}

var CRC32MPEG2 = Algorithm[uint32]{
	Name:  "CRC-32/MPEG-2",
	Width: 32,
	Poly:  0x04c11db7,
	Init:  0xffffffff,
	Check: 0x0376e6e7,
}

var CRC32Xfer = Algorithm[uint32]{
	Name:  "CRC-32/XFER",
	Width: 32,
	Poly:  0x000000af,
	Check: 0xbd0be338,
}

// CRC64GoISO matches hash/crc64 with the ISO table.
var CRC64GoISO = Algorithm[uint64]{
	Name:    "CRC-64/GO-ISO",
	Width:   64,
	Poly:    0x000000000000001b,
	Init:    0xffffffffffffffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffffffffffffffff,
	Check:   0xb90956c775a41001,
	Residue: 0x5300000000000000,
}

// CRC64XZ is the xz container CRC, matching hash/crc64 with the ECMA table.
var CRC64XZ = Algorithm[uint64]{
	Name:    "CRC-64/XZ",
	Width:   64,
	Poly:    0x42f0e1eba9ea3693,
	Init:    0xffffffffffffffff,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xffffffffffffffff,
	Check:   0x995dc9bbdf1939fa,
	Residue: 0x49958c9abd7d353f,
}

// CRC64ECMA182 is the unreflected DLT-1 tape cartridge CRC the ECMA table
// polynomial originates from.
var CRC64ECMA182 = Algorithm[uint64]{
	Name:  "CRC-64/ECMA-182",
	Width: 64,
	Poly:  0x42f0e1eba9ea3693,
	Check: 0x6c40df5f0b497347,
}
