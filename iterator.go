package logkv_go

import (
	"bytes"

	"logkv-go/index"
)

// Iterator walks the database in key order, resolving values lazily from the
// data files. It sees the index as of its creation.
type Iterator struct {
	indexIter index.Iterator
	db        *DB
	options   IteratorOptions
}

// NewIterator returns an iterator positioned at the first matching key.
func (db *DB) NewIterator(opts IteratorOptions) *Iterator {
	it := &Iterator{
		indexIter: db.index.Iterator(opts.Reverse),
		db:        db,
		options:   opts,
	}
	it.skipToNext()
	return it
}

// Rewind returns to the first matching key.
func (it *Iterator) Rewind() {
	it.indexIter.Rewind()
	it.skipToNext()
}

// Seek positions the iterator at the first matching key >= key (<= key in
// reverse).
func (it *Iterator) Seek(key []byte) {
	it.indexIter.Seek(key)
	it.skipToNext()
}

// Next advances to the next matching key.
func (it *Iterator) Next() {
	it.indexIter.Next()
	it.skipToNext()
}

// Valid reports whether the iterator points at a key.
func (it *Iterator) Valid() bool {
	return it.indexIter.Valid()
}

// Key returns the current key.
func (it *Iterator) Key() []byte {
	return it.indexIter.Key()
}

// Value reads and returns the current value.
func (it *Iterator) Value() ([]byte, error) {
	pos := it.indexIter.Value()
	it.db.mu.RLock()
	defer it.db.mu.RUnlock()
	return it.db.getValueByPosition(pos)
}

// Close releases the iterator.
func (it *Iterator) Close() {
	it.indexIter.Close()
}

// skipToNext skips keys that do not carry the configured prefix.
func (it *Iterator) skipToNext() {
	prefixLen := len(it.options.Prefix)
	if prefixLen == 0 {
		return
	}
	for ; it.indexIter.Valid(); it.indexIter.Next() {
		key := it.indexIter.Key()
		if prefixLen <= len(key) && bytes.Equal(it.options.Prefix, key[:prefixLen]) {
			break
		}
	}
}
