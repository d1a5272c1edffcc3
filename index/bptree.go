package index

import (
	"path/filepath"

	"go.etcd.io/bbolt"

	"logkv-go/data"
)

const bptreeIndexFileName = "bptree-index"

var indexBucketName = []byte("logkv-index")

// BPlusTree is a disk-resident index backed by bbolt. Unlike the in-memory
// indexes it survives restarts, at the cost of a transaction per operation.
// bbolt handles its own locking.
type BPlusTree struct {
	tree *bbolt.DB
}

func NewBPlusTree(dirPath string) *BPlusTree {
	tree, err := bbolt.Open(filepath.Join(dirPath, bptreeIndexFileName), 0644, bbolt.DefaultOptions)
	if err != nil {
		panic("failed to open bptree index: " + err.Error())
	}
	if err := tree.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(indexBucketName)
		return err
	}); err != nil {
		panic("failed to create bptree index bucket: " + err.Error())
	}
	return &BPlusTree{tree: tree}
}

func (bpt *BPlusTree) Put(key []byte, pos *data.LogRecordPos) bool {
	if err := bpt.tree.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(indexBucketName).Put(key, data.EncodeLogRecordPos(pos))
	}); err != nil {
		return false
	}
	return true
}

func (bpt *BPlusTree) Get(key []byte) *data.LogRecordPos {
	var pos *data.LogRecordPos
	if err := bpt.tree.View(func(tx *bbolt.Tx) error {
		if value := tx.Bucket(indexBucketName).Get(key); len(value) > 0 {
			pos = data.DecodeLogRecordPos(value)
		}
		return nil
	}); err != nil {
		return nil
	}
	return pos
}

func (bpt *BPlusTree) Delete(key []byte) bool {
	var existed bool
	if err := bpt.tree.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(indexBucketName)
		if value := bucket.Get(key); len(value) > 0 {
			existed = true
			return bucket.Delete(key)
		}
		return nil
	}); err != nil {
		return false
	}
	return existed
}

func (bpt *BPlusTree) Size() int {
	var size int
	bpt.tree.View(func(tx *bbolt.Tx) error {
		size = tx.Bucket(indexBucketName).Stats().KeyN
		return nil
	})
	return size
}

func (bpt *BPlusTree) Iterator(reverse bool) Iterator {
	var values []*Item
	bpt.tree.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(indexBucketName)
		values = make([]*Item, 0, bucket.Stats().KeyN)
		appendItem := func(k, v []byte) {
			key := append([]byte(nil), k...)
			values = append(values, &Item{key: key, pos: data.DecodeLogRecordPos(v)})
		}
		c := bucket.Cursor()
		if reverse {
			for k, v := c.Last(); k != nil; k, v = c.Prev() {
				appendItem(k, v)
			}
		} else {
			for k, v := c.First(); k != nil; k, v = c.Next() {
				appendItem(k, v)
			}
		}
		return nil
	})
	return newSortedIterator(values, reverse)
}

func (bpt *BPlusTree) Close() error {
	return bpt.tree.Close()
}
