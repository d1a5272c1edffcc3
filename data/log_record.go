package data

import (
	"encoding/binary"
	"errors"
)

type LogRecordType = byte

const (
	LogRecordNormal LogRecordType = iota
	LogRecordDeleted
)

// type + varint keySize + varint valueSize
const maxLogRecordHeaderSize = 1 + binary.MaxVarintLen32*2

var ErrInvalidLogRecord = errors.New("data: invalid log record encoding")

// LogRecord is one logical entry appended to a data file: a key/value pair,
// or a tombstone marking a deletion. The wal layer below fragments and
// checksums the encoded bytes, so the encoding here carries no checksum of
// its own.
type LogRecord struct {
	Key   []byte
	Value []byte
	Type  LogRecordType
}

// LogRecordPos locates a record on disk: which data file and the offset at
// which its first fragment header starts.
type LogRecordPos struct {
	Fid    uint32
	Offset int64
}

// EncodeLogRecord encodes a record into the payload handed to the wal layer
// and returns it with its length.
//
// Layout: [type:1][keySize uvarint][valueSize uvarint][key][value]
func EncodeLogRecord(rec *LogRecord) ([]byte, int64) {
	var header [maxLogRecordHeaderSize]byte
	header[0] = rec.Type
	n := 1
	n += binary.PutUvarint(header[n:], uint64(len(rec.Key)))
	n += binary.PutUvarint(header[n:], uint64(len(rec.Value)))

	buf := make([]byte, 0, n+len(rec.Key)+len(rec.Value))
	buf = append(buf, header[:n]...)
	buf = append(buf, rec.Key...)
	buf = append(buf, rec.Value...)
	return buf, int64(len(buf))
}

// DecodeLogRecord decodes a payload produced by EncodeLogRecord.
func DecodeLogRecord(buf []byte) (*LogRecord, error) {
	if len(buf) < 1 {
		return nil, ErrInvalidLogRecord
	}
	rec := &LogRecord{Type: buf[0]}
	i := 1

	keySize, n := binary.Uvarint(buf[i:])
	if n <= 0 {
		return nil, ErrInvalidLogRecord
	}
	i += n
	valueSize, n := binary.Uvarint(buf[i:])
	if n <= 0 {
		return nil, ErrInvalidLogRecord
	}
	i += n

	if uint64(len(buf)-i) != keySize+valueSize {
		return nil, ErrInvalidLogRecord
	}
	rec.Key = buf[i : i+int(keySize)]
	rec.Value = buf[i+int(keySize):]
	return rec, nil
}

// EncodeLogRecordPos encodes a position for storage in a persistent index.
func EncodeLogRecordPos(pos *LogRecordPos) []byte {
	buf := make([]byte, binary.MaxVarintLen32+binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, uint64(pos.Fid))
	n += binary.PutVarint(buf[n:], pos.Offset)
	return buf[:n]
}

// DecodeLogRecordPos is the inverse of EncodeLogRecordPos.
func DecodeLogRecordPos(buf []byte) *LogRecordPos {
	fid, n := binary.Uvarint(buf)
	offset, _ := binary.Varint(buf[n:])
	return &LogRecordPos{Fid: uint32(fid), Offset: offset}
}
