// Package wal reads and writes the block-based record format used by the
// engine's data files.
//
// A log file is a sequence of 32KB blocks; only the tail of the file may be a
// partial block. Each block holds a sequence of physical records packed
// back-to-back:
//
//	block  := record* trailer?
//	record :=
//	  checksum: uint32  // masked crc32c of type and data[]; little-endian
//	  length:   uint16  // little-endian
//	  type:     uint8   // one of FullType, FirstType, MiddleType, LastType
//	  data:     uint8[length]
//
// A record never crosses a block boundary. When fewer than seven bytes remain
// in a block (too few to hold even an empty record's header), the writer fills
// them with zero bytes and the next record starts at the next block boundary.
// Readers must skip such trailers.
//
// A logical record handed to Writer.AddRecord is stored either as a single
// FullType record, or split into a FirstType record, zero or more MiddleType
// records, and a LastType record, in order. Concatenating the fragment
// payloads of such a run yields the original bytes exactly. An empty logical
// record is stored as one zero-length FullType record.
//
// The type byte value 0 (ZeroType) is reserved for preallocated, never-written
// space; combined with checksum masking it lets a reader distinguish zeroed
// storage from real records.
package wal
