package index

import (
	"sync"

	goart "github.com/plar/go-adaptive-radix-tree"

	"logkv-go/data"
)

// AdaptiveRadixTree wraps plar/go-adaptive-radix-tree.
type AdaptiveRadixTree struct {
	tree goart.Tree
	lock *sync.RWMutex
}

func NewART() *AdaptiveRadixTree {
	return &AdaptiveRadixTree{
		tree: goart.New(),
		lock: new(sync.RWMutex),
	}
}

func (art *AdaptiveRadixTree) Put(key []byte, pos *data.LogRecordPos) bool {
	art.lock.Lock()
	defer art.lock.Unlock()
	art.tree.Insert(key, pos)
	return true
}

func (art *AdaptiveRadixTree) Get(key []byte) *data.LogRecordPos {
	art.lock.RLock()
	defer art.lock.RUnlock()
	value, found := art.tree.Search(key)
	if !found {
		return nil
	}
	return value.(*data.LogRecordPos)
}

func (art *AdaptiveRadixTree) Delete(key []byte) bool {
	art.lock.Lock()
	defer art.lock.Unlock()
	_, deleted := art.tree.Delete(key)
	return deleted
}

func (art *AdaptiveRadixTree) Size() int {
	art.lock.RLock()
	defer art.lock.RUnlock()
	return art.tree.Size()
}

func (art *AdaptiveRadixTree) Iterator(reverse bool) Iterator {
	art.lock.RLock()
	defer art.lock.RUnlock()

	values := make([]*Item, art.tree.Size())
	idx := 0
	if reverse {
		idx = len(values) - 1
	}
	art.tree.ForEach(func(node goart.Node) bool {
		values[idx] = &Item{key: node.Key(), pos: node.Value().(*data.LogRecordPos)}
		if reverse {
			idx--
		} else {
			idx++
		}
		return true
	})
	return newSortedIterator(values, reverse)
}

func (art *AdaptiveRadixTree) Close() error {
	return nil
}
