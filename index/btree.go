package index

import (
	"bytes"
	"sort"
	"sync"

	"github.com/google/btree"

	"logkv-go/data"
)

// BTree wraps google/btree. The library is not safe for concurrent writes, so
// mutations take a lock.
type BTree struct {
	tree *btree.BTree
	lock *sync.RWMutex
}

func NewBTree() *BTree {
	return &BTree{
		tree: btree.New(32),
		lock: new(sync.RWMutex),
	}
}

func (bt *BTree) Put(key []byte, pos *data.LogRecordPos) bool {
	bt.lock.Lock()
	defer bt.lock.Unlock()
	bt.tree.ReplaceOrInsert(&Item{key: key, pos: pos})
	return true
}

func (bt *BTree) Get(key []byte) *data.LogRecordPos {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	item := bt.tree.Get(&Item{key: key})
	if item == nil {
		return nil
	}
	return item.(*Item).pos
}

func (bt *BTree) Delete(key []byte) bool {
	bt.lock.Lock()
	defer bt.lock.Unlock()
	return bt.tree.Delete(&Item{key: key}) != nil
}

func (bt *BTree) Size() int {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	return bt.tree.Len()
}

func (bt *BTree) Iterator(reverse bool) Iterator {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	return newSortedIterator(snapshotBTree(bt.tree, reverse), reverse)
}

func (bt *BTree) Close() error {
	return nil
}

func snapshotBTree(tree *btree.BTree, reverse bool) []*Item {
	values := make([]*Item, 0, tree.Len())
	saveValues := func(it btree.Item) bool {
		values = append(values, it.(*Item))
		return true
	}
	if reverse {
		tree.Descend(saveValues)
	} else {
		tree.Ascend(saveValues)
	}
	return values
}

// sortedIterator iterates a snapshot of index entries. Shared by the
// in-memory index implementations.
type sortedIterator struct {
	currIndex int
	reverse   bool
	values    []*Item
}

func newSortedIterator(values []*Item, reverse bool) *sortedIterator {
	return &sortedIterator{reverse: reverse, values: values}
}

func (it *sortedIterator) Rewind() {
	it.currIndex = 0
}

func (it *sortedIterator) Seek(key []byte) {
	if it.reverse {
		it.currIndex = sort.Search(len(it.values), func(i int) bool {
			return bytes.Compare(it.values[i].key, key) <= 0
		})
	} else {
		it.currIndex = sort.Search(len(it.values), func(i int) bool {
			return bytes.Compare(it.values[i].key, key) >= 0
		})
	}
}

func (it *sortedIterator) Next() {
	it.currIndex++
}

func (it *sortedIterator) Valid() bool {
	return it.currIndex < len(it.values)
}

func (it *sortedIterator) Key() []byte {
	return it.values[it.currIndex].key
}

func (it *sortedIterator) Value() *data.LogRecordPos {
	return it.values[it.currIndex].pos
}

func (it *sortedIterator) Close() {
	it.values = nil
}
