package data

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"logkv-go/wal"
)

const DataFileNameSuffix = ".data"

const (
	dataFilePerm = 0644
	writeBufSize = 64 * 1024
)

// DataFile is one append-only segment of the database. Appends go through a
// wal.Writer so records are fragmented, checksummed and block-aligned; reads
// go through a wal.Reader positioned at a record offset.
//
// DataFile implements wal.SyncWriter: Append writes into a bufio buffer and
// Flush drains it to the OS. Durability is only guaranteed after Sync.
type DataFile struct {
	FileId   uint32
	WriteOff int64 // file size, where the next append lands

	file *os.File
	buf  *bufio.Writer
	w    *wal.Writer
}

// GetDataFileName returns the path of the data file with the given id.
func GetDataFileName(dirPath string, fid uint32) string {
	return filepath.Join(dirPath, fmt.Sprintf("%09d%s", fid, DataFileNameSuffix))
}

// OpenDataFile opens or creates the data file with the given id, resuming
// appends at its current length.
func OpenDataFile(dirPath string, fid uint32) (*DataFile, error) {
	f, err := os.OpenFile(GetDataFileName(dirPath, fid), os.O_CREATE|os.O_RDWR|os.O_APPEND, dataFilePerm)
	if err != nil {
		return nil, fmt.Errorf("open data file %d: %w", fid, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	df := &DataFile{
		FileId:   fid,
		WriteOff: st.Size(),
		file:     f,
		buf:      bufio.NewWriterSize(f, writeBufSize),
	}
	df.w = wal.NewWriterAt(df, st.Size())
	return df, nil
}

// Append implements wal.SyncWriter.
func (df *DataFile) Append(p []byte) error {
	_, err := df.buf.Write(p)
	return err
}

// Flush implements wal.SyncWriter.
func (df *DataFile) Flush() error {
	return df.buf.Flush()
}

// WriteRecord appends one encoded logical record and returns the offset at
// which it begins, for the in-memory index.
func (df *DataFile) WriteRecord(p []byte) (int64, error) {
	if err := df.w.AddRecord(p); err != nil {
		return 0, err
	}
	df.WriteOff = df.w.Offset()
	return df.w.LastRecordOffset(), nil
}

// ReadLogRecordAt reassembles and decodes the logical record starting at
// offset. Returns io.EOF if no valid record starts there.
func (df *DataFile) ReadLogRecordAt(offset int64) (*LogRecord, error) {
	rd := df.NewReader()
	if err := rd.SeekRecord(offset); err != nil {
		return nil, err
	}
	payload, err := rd.Next()
	if err != nil {
		return nil, err
	}
	return DecodeLogRecord(payload)
}

// NewReader returns a wal.Reader scanning this file from the beginning,
// used to rebuild the index on startup.
func (df *DataFile) NewReader() *wal.Reader {
	return wal.NewReader(io.NewSectionReader(df.file, 0, math.MaxInt64))
}

// Sync drains the write buffer and fsyncs the file.
func (df *DataFile) Sync() error {
	if err := df.buf.Flush(); err != nil {
		return err
	}
	return df.file.Sync()
}

// Close flushes pending writes and closes the file.
func (df *DataFile) Close() error {
	if err := df.buf.Flush(); err != nil {
		return err
	}
	return df.file.Close()
}
