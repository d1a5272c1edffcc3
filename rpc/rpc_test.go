package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logkv "logkv-go"
)

func testService(t *testing.T) *Service {
	opts := logkv.DefaultOptions
	opts.DirPath = t.TempDir()
	db, err := logkv.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db)
}

func TestServicePutGet(t *testing.T) {
	svc := testService(t)

	var reply string
	require.NoError(t, svc.Put(map[string]string{"k1": "v1", "k2": "v2"}, &reply))
	assert.Equal(t, "OK", reply)

	var value string
	require.NoError(t, svc.Get("k1", &value))
	assert.Equal(t, "v1", value)

	assert.Error(t, svc.Get("missing", &value))
}

func TestServiceDeleteAndListKeys(t *testing.T) {
	svc := testService(t)

	var reply string
	require.NoError(t, svc.Put(map[string]string{"a": "1", "b": "2"}, &reply))
	require.NoError(t, svc.Delete("a", &reply))
	assert.Equal(t, "OK", reply)

	var keys []string
	require.NoError(t, svc.ListKeys(struct{}{}, &keys))
	assert.Equal(t, []string{"b"}, keys)
}
