package logkv_go

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorEmptyDB(t *testing.T) {
	db, err := Open(testOptions(t))
	require.NoError(t, err)
	defer db.Close()

	it := db.NewIterator(DefaultIteratorOptions)
	defer it.Close()
	assert.False(t, it.Valid())
}

func TestIteratorForwardAndReverse(t *testing.T) {
	db, err := Open(testOptions(t))
	require.NoError(t, err)
	defer db.Close()

	pairs := map[string]string{
		"acc": "1", "abc": "2", "bbc": "3", "bcc": "4",
	}
	for k, v := range pairs {
		require.NoError(t, db.Put([]byte(k), []byte(v)))
	}

	var keys []string
	it := db.NewIterator(DefaultIteratorOptions)
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
		value, err := it.Value()
		require.NoError(t, err)
		assert.Equal(t, pairs[string(it.Key())], string(value))
	}
	it.Close()
	assert.Equal(t, []string{"abc", "acc", "bbc", "bcc"}, keys)

	keys = keys[:0]
	rit := db.NewIterator(IteratorOptions{Reverse: true})
	for ; rit.Valid(); rit.Next() {
		keys = append(keys, string(rit.Key()))
	}
	rit.Close()
	assert.Equal(t, []string{"bcc", "bbc", "acc", "abc"}, keys)
}

func TestIteratorPrefix(t *testing.T) {
	db, err := Open(testOptions(t))
	require.NoError(t, err)
	defer db.Close()

	for _, k := range []string{"user:1", "user:2", "order:1", "user:3", "cart:9"} {
		require.NoError(t, db.Put([]byte(k), []byte("v")))
	}

	var keys []string
	it := db.NewIterator(IteratorOptions{Prefix: []byte("user:")})
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	it.Close()
	assert.Equal(t, []string{"user:1", "user:2", "user:3"}, keys)
}

func TestIteratorSeek(t *testing.T) {
	db, err := Open(testOptions(t))
	require.NoError(t, err)
	defer db.Close()

	for _, k := range []string{"aa", "bb", "cc", "dd"} {
		require.NoError(t, db.Put([]byte(k), []byte("v")))
	}

	it := db.NewIterator(DefaultIteratorOptions)
	defer it.Close()

	it.Seek([]byte("b"))
	require.True(t, it.Valid())
	assert.Equal(t, []byte("bb"), it.Key())

	it.Rewind()
	require.True(t, it.Valid())
	assert.Equal(t, []byte("aa"), it.Key())
}
