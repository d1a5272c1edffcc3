package wal

import (
	"encoding/binary"
	"errors"
	"io"

	"logkv-go/wal/crc"
)

// ErrNotSeekable is returned by SeekRecord when the underlying source does
// not implement io.Seeker.
var ErrNotSeekable = errors.New("wal: source does not support seeking")

// Reader reconstructs logical records from a block-format log stream.
//
// A truncated tail — a torn header, a payload cut short, or a FirstType run
// with no LastType — is treated as the result of a crash mid-write: the
// partial record is dropped and Next reports io.EOF. Records fully written
// before the tear are still returned.
type Reader struct {
	src io.Reader

	buf    [BlockSize]byte
	n, i   int // buf[i:n] is not yet parsed
	loaded bool
	eof    bool

	// blockStart is the absolute offset of buf[0] in src; skip is a pending
	// in-block cursor set by SeekRecord, applied when the block is loaded.
	blockStart int64
	skip       int

	recordOffset int64
	rec          []byte // assembly scratch, reused across calls
}

// NewReader returns a Reader consuming src from its current position.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, recordOffset: -1}
}

// Next returns the next logical record, or io.EOF at the clean end of the
// log. The returned slice is owned by the caller.
func (r *Reader) Next() ([]byte, error) {
	inFragment := false
	rec := r.rec[:0]
	var first int64

	for {
		frag, t, off, err := r.readPhysicalRecord()
		if err != nil {
			return nil, err
		}
		switch t {
		case FullType:
			// Any dangling FirstType run before this is dropped.
			r.recordOffset = off
			return append([]byte(nil), frag...), nil
		case FirstType:
			inFragment = true
			first = off
			rec = append(rec[:0], frag...)
		case MiddleType:
			if inFragment {
				rec = append(rec, frag...)
			}
		case LastType:
			if inFragment {
				rec = append(rec, frag...)
				r.rec = rec
				r.recordOffset = first
				return append([]byte(nil), rec...), nil
			}
		}
	}
}

// RecordOffset returns the absolute offset at which the record most recently
// returned by Next begins, or -1 before the first record.
func (r *Reader) RecordOffset() int64 {
	return r.recordOffset
}

// SeekRecord positions the reader so the following Next call returns the
// record whose first fragment header starts at offset. The source must
// implement io.Seeker.
func (r *Reader) SeekRecord(offset int64) error {
	s, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	c := offset % BlockSize
	if _, err := s.Seek(offset-c, io.SeekStart); err != nil {
		return err
	}
	r.blockStart = offset - c
	r.skip = int(c)
	r.n, r.i = 0, 0
	r.loaded = false
	r.eof = false
	r.recordOffset = -1
	return nil
}

// readPhysicalRecord returns the next valid fragment, its type, and the
// absolute offset of its header. Zero-padded trailers and preallocated
// regions are skipped; a corrupt region causes a resync to the next block,
// except at the end of the log where it is treated as a torn write.
func (r *Reader) readPhysicalRecord() (p []byte, t RecordType, off int64, err error) {
	for {
		if !r.loaded || r.n-r.i < HeaderSize {
			if err := r.nextBlock(); err != nil {
				return nil, 0, 0, err
			}
			continue
		}

		hdr := r.buf[r.i : r.i+HeaderSize]
		length := int(binary.LittleEndian.Uint16(hdr[4:6]))
		t = hdr[6]

		if t == ZeroType && length == 0 {
			// Preallocated or zeroed space; nothing further in this block.
			r.i = r.n
			continue
		}
		if t == ZeroType || t > MaxRecordType || r.i+HeaderSize+length > r.n {
			if r.eof {
				return nil, 0, 0, io.EOF
			}
			r.i = r.n
			continue
		}
		p = r.buf[r.i+HeaderSize : r.i+HeaderSize+length]
		if crc.New(hdr[6:7]).Update(p).Value() != binary.LittleEndian.Uint32(hdr[0:4]) {
			if r.eof {
				return nil, 0, 0, io.EOF
			}
			r.i = r.n
			continue
		}

		off = r.blockStart + int64(r.i)
		r.i += HeaderSize + length
		return p, t, off, nil
	}
}

func (r *Reader) nextBlock() error {
	if r.eof {
		return io.EOF
	}
	if r.loaded {
		r.blockStart += int64(r.n)
	}
	n, err := io.ReadFull(r.src, r.buf[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		r.eof = true
		err = nil
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return io.EOF
	}
	r.n = n
	r.i = r.skip
	r.skip = 0
	r.loaded = true
	if r.i >= r.n {
		return io.EOF
	}
	return nil
}
