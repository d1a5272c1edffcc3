package wal

// RecordType tags a physical record as a whole logical record or as one
// fragment of a split logical record.
type RecordType = byte

const (
	// ZeroType is reserved for preallocated, never-written file space.
	ZeroType RecordType = 0

	// FullType marks a record holding an entire logical record.
	FullType RecordType = 1

	// FirstType, MiddleType and LastType mark the fragments of a logical
	// record split across block boundaries.
	FirstType  RecordType = 2
	MiddleType RecordType = 3
	LastType   RecordType = 4

	MaxRecordType = LastType
)

const (
	// BlockSize is the alignment unit of the log. No physical record ever
	// crosses a BlockSize boundary.
	BlockSize = 32768

	// HeaderSize is checksum (4 bytes) + length (2 bytes) + type (1 byte).
	HeaderSize = 4 + 2 + 1
)
