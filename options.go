package logkv_go

import "os"

type IndexType = int8

const (
	BTree IndexType = iota + 1 // google/btree index

	ART // adaptive radix tree index

	BPlusTree // bbolt-backed persistent B+ tree index
)

type Options struct {
	DirPath string // database data directory

	DataFileSize int64 // rotation threshold for the active data file

	SyncWrites bool // fsync after every write

	IndexType IndexType // key directory implementation
}

var DefaultOptions = Options{
	DirPath:      os.TempDir(),
	DataFileSize: 256 * 1024 * 1024, // 256MB
	SyncWrites:   false,
	IndexType:    BTree,
}

// IteratorOptions configures a DB iterator.
type IteratorOptions struct {
	// Prefix restricts iteration to keys with this prefix. Empty means all keys.
	Prefix []byte
	// Reverse iterates in descending key order.
	Reverse bool
}

var DefaultIteratorOptions = IteratorOptions{
	Prefix:  nil,
	Reverse: false,
}
