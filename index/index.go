package index

import (
	"bytes"

	"github.com/google/btree"

	"logkv-go/data"
)

// Indexer is the key directory: it maps each key to the disk position of its
// latest record. Implementations are safe for concurrent use.
type Indexer interface {
	// Put stores the position for key, replacing any previous one.
	Put(key []byte, pos *data.LogRecordPos) bool

	// Get returns the position for key, or nil if the key is unknown.
	Get(key []byte) *data.LogRecordPos

	// Delete removes key and reports whether it was present.
	Delete(key []byte) bool

	// Size returns the number of keys in the index.
	Size() int

	// Iterator returns an iterator over the index in key order.
	Iterator(reverse bool) Iterator

	// Close releases resources held by the index.
	Close() error
}

type IndexType = int8

const (
	Btree IndexType = iota + 1 // google/btree

	ART // adaptive radix tree

	BPTree // bbolt-backed persistent B+ tree
)

// NewIndexer builds the index of the requested type. dirPath is only used by
// persistent indexes.
func NewIndexer(typ IndexType, dirPath string) Indexer {
	switch typ {
	case Btree:
		return NewBTree()
	case ART:
		return NewART()
	case BPTree:
		return NewBPlusTree(dirPath)
	default:
		panic("unsupported index type")
	}
}

type Item struct {
	key []byte
	pos *data.LogRecordPos
}

// Less orders items by key, as required by btree.
func (ai *Item) Less(bi btree.Item) bool {
	return bytes.Compare(ai.key, bi.(*Item).key) == -1
}

// Iterator walks the index in key order.
type Iterator interface {
	// Rewind returns to the first entry.
	Rewind()

	// Seek positions the iterator at the first key >= key (<= key when
	// iterating in reverse).
	Seek(key []byte)

	// Next advances to the next entry.
	Next()

	// Valid reports whether the iterator points at an entry.
	Valid() bool

	// Key returns the key at the current position.
	Key() []byte

	// Value returns the position at the current position.
	Value() *data.LogRecordPos

	// Close releases the iterator.
	Close()
}
