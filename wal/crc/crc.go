// Package crc implements the checksum used by the write-ahead log: CRC-32C
// (Castagnoli) with a storage mask applied to the final value.
//
// The mask (a bit rotation plus a fixed delta) keeps a stored checksum of
// all-zero bytes from matching genuinely zeroed, never-written storage, so a
// reader scanning preallocated space does not mistake it for a valid record.
package crc

import "hash/crc32"

var table = crc32.MakeTable(crc32.Castagnoli)

// CRC is a running CRC-32C state. The zero value is the empty checksum.
type CRC uint32

// New returns the CRC of b.
func New(b []byte) CRC {
	return CRC(0).Update(b)
}

// Update returns the CRC of the bytes hashed so far followed by b.
func (c CRC) Update(b []byte) CRC {
	return CRC(crc32.Update(uint32(c), table, b))
}

const maskDelta = 0xa282ead8

// Value returns the masked checksum suitable for storage.
func (c CRC) Value() uint32 {
	return uint32(c>>15|c<<17) + maskDelta
}
