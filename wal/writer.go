package wal

import (
	"encoding/binary"
	"math"

	"logkv-go/wal/crc"
)

// SyncWriter is the destination a Writer appends records to. Append must
// preserve the exact byte sequence and ordering of calls; both operations may
// fail and the failure aborts the current AddRecord.
type SyncWriter interface {
	Append(p []byte) error
	Flush() error
}

// Writer appends logical records to a SyncWriter in the block format described
// in the package documentation.
//
// A Writer is not safe for concurrent use; callers serialize access (the DB
// holds its mutex across appends).
type Writer struct {
	dest SyncWriter

	// blockOffset is the number of bytes already written into the current
	// block. Always in [0, BlockSize) between AddRecord calls.
	blockOffset int

	// offset is the absolute write position in dest, including any trailer
	// padding. lastRecordOffset is where the most recent logical record's
	// first fragment header begins.
	offset           int64
	lastRecordOffset int64

	// typeCRC[t] is the checksum state after hashing the single byte t. Used
	// as the seed so the stored checksum covers the type byte without
	// rehashing it on every emit.
	typeCRC [MaxRecordType + 1]crc.CRC
}

// NewWriter returns a Writer appending to an empty or freshly created dest.
func NewWriter(dest SyncWriter) *Writer {
	return NewWriterAt(dest, 0)
}

// NewWriterAt returns a Writer resuming appends to a dest whose backing store
// already holds destLength bytes. The caller guarantees no bytes exist beyond
// destLength; the file is not re-read.
func NewWriterAt(dest SyncWriter, destLength int64) *Writer {
	w := &Writer{
		dest:             dest,
		blockOffset:      int(destLength % BlockSize),
		offset:           destLength,
		lastRecordOffset: -1,
	}
	for i := range w.typeCRC {
		w.typeCRC[i] = crc.New([]byte{byte(i)})
	}
	return w
}

var zeroTrailer [HeaderSize - 1]byte

// AddRecord appends p to the log as one or more physical records, fragmenting
// at block boundaries. An empty p still produces one zero-length FullType
// record. On the first append or flush failure the error is returned and no
// further fragments are emitted; fragments already flushed remain on disk and
// a reader treats the truncated run as a torn trailing record.
func (w *Writer) AddRecord(p []byte) error {
	left := len(p)
	begin := true

	// Emit at least once so empty records are observable by the reader.
	for {
		leftover := BlockSize - w.blockOffset
		if leftover < HeaderSize {
			if leftover > 0 {
				// Too small for a header. Fill with zeros so the
				// reader never parses stale bytes here.
				if err := w.dest.Append(zeroTrailer[:leftover]); err != nil {
					return err
				}
				w.offset += int64(leftover)
			}
			w.blockOffset = 0
		}

		avail := BlockSize - w.blockOffset - HeaderSize
		n := left
		if n > avail {
			n = avail
		}

		end := n == left
		var t RecordType
		switch {
		case begin && end:
			t = FullType
		case begin:
			t = FirstType
		case end:
			t = LastType
		default:
			t = MiddleType
		}

		if begin {
			w.lastRecordOffset = w.offset
		}
		if err := w.emitPhysicalRecord(t, p[len(p)-left:len(p)-left+n]); err != nil {
			return err
		}
		left -= n
		begin = false

		if left == 0 {
			return nil
		}
	}
}

// LastRecordOffset returns the absolute offset in dest at which the most
// recently added record begins, or -1 if no record has been added.
func (w *Writer) LastRecordOffset() int64 {
	return w.lastRecordOffset
}

// Offset returns the absolute write position in dest, including trailer
// padding, after all records added so far.
func (w *Writer) Offset() int64 {
	return w.offset
}

func (w *Writer) emitPhysicalRecord(t RecordType, p []byte) error {
	if len(p) > math.MaxUint16 {
		panic("wal: record fragment exceeds length field")
	}
	if w.blockOffset+HeaderSize+len(p) > BlockSize {
		panic("wal: record fragment crosses block boundary")
	}

	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint16(buf[4:6], uint16(len(p)))
	buf[6] = t
	binary.LittleEndian.PutUint32(buf[0:4], w.typeCRC[t].Update(p).Value())

	err := w.dest.Append(buf[:])
	if err == nil {
		if err = w.dest.Append(p); err == nil {
			err = w.dest.Flush()
		}
	}

	// The write position advances past this region even on failure; the
	// space must not be reused for a later record.
	w.blockOffset += HeaderSize + len(p)
	w.offset += int64(HeaderSize + len(p))
	return err
}
