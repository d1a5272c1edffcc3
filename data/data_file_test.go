package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logkv-go/wal"
)

func TestOpenDataFile(t *testing.T) {
	dir := t.TempDir()

	df, err := OpenDataFile(dir, 0)
	require.NoError(t, err)
	require.NotNil(t, df)
	assert.Equal(t, uint32(0), df.FileId)
	assert.Equal(t, int64(0), df.WriteOff)
	require.NoError(t, df.Close())
}

func TestDataFileWriteAndReadRecord(t *testing.T) {
	dir := t.TempDir()
	df, err := OpenDataFile(dir, 1)
	require.NoError(t, err)
	defer df.Close()

	recs := []*LogRecord{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: make([]byte, 2*wal.BlockSize)}, // fragments
		{Key: []byte("c"), Type: LogRecordDeleted},
	}

	var offsets []int64
	for _, rec := range recs {
		enc, _ := EncodeLogRecord(rec)
		off, err := df.WriteRecord(enc)
		require.NoError(t, err)
		offsets = append(offsets, off)
	}
	assert.Equal(t, int64(0), offsets[0])
	assert.Greater(t, df.WriteOff, int64(2*wal.BlockSize))

	for i, rec := range recs {
		got, err := df.ReadLogRecordAt(offsets[i])
		require.NoError(t, err, "record %d", i)
		assert.Equal(t, rec.Key, got.Key, "record %d", i)
		assert.Equal(t, len(rec.Value), len(got.Value), "record %d", i)
		assert.Equal(t, rec.Type, got.Type, "record %d", i)
	}
}

func TestDataFileResume(t *testing.T) {
	dir := t.TempDir()

	df, err := OpenDataFile(dir, 7)
	require.NoError(t, err)
	enc, _ := EncodeLogRecord(&LogRecord{Key: []byte("before"), Value: []byte("crash")})
	off1, err := df.WriteRecord(enc)
	require.NoError(t, err)
	require.NoError(t, df.Close())

	// Reopen: appends continue where the file left off.
	df, err = OpenDataFile(dir, 7)
	require.NoError(t, err)
	defer df.Close()
	assert.Greater(t, df.WriteOff, int64(0))

	enc, _ = EncodeLogRecord(&LogRecord{Key: []byte("after"), Value: []byte("reopen")})
	off2, err := df.WriteRecord(enc)
	require.NoError(t, err)
	require.Greater(t, off2, off1)

	for _, off := range []int64{off1, off2} {
		_, err := df.ReadLogRecordAt(off)
		require.NoError(t, err)
	}
}

func TestDataFileScanReader(t *testing.T) {
	dir := t.TempDir()
	df, err := OpenDataFile(dir, 2)
	require.NoError(t, err)
	defer df.Close()

	want := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	for _, key := range want {
		enc, _ := EncodeLogRecord(&LogRecord{Key: key, Value: key})
		_, err := df.WriteRecord(enc)
		require.NoError(t, err)
	}

	rd := df.NewReader()
	for i := 0; i < len(want); i++ {
		payload, err := rd.Next()
		require.NoError(t, err)
		rec, err := DecodeLogRecord(payload)
		require.NoError(t, err)
		assert.Equal(t, want[i], rec.Key)
	}
}

func TestDataFileSync(t *testing.T) {
	dir := t.TempDir()
	df, err := OpenDataFile(dir, 3)
	require.NoError(t, err)
	defer df.Close()

	enc, _ := EncodeLogRecord(&LogRecord{Key: []byte("k"), Value: []byte("v")})
	_, err = df.WriteRecord(enc)
	require.NoError(t, err)
	assert.NoError(t, df.Sync())
}
