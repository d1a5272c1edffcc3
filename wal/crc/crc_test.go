package crc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownValue(t *testing.T) {
	// Standard CRC-32C check value for "123456789".
	assert.Equal(t, CRC(0xe3069283), New([]byte("123456789")))
	assert.Equal(t, uint32(0xc78ab0e5), New([]byte("123456789")).Value())
}

func TestIncrementalUpdate(t *testing.T) {
	whole := New([]byte("hello world"))
	split := New([]byte("hello ")).Update([]byte("world"))
	assert.Equal(t, whole, split)

	seeded := New([]byte{1}).Update([]byte("hello world"))
	assert.Equal(t, New(append([]byte{1}, []byte("hello world")...)), seeded)
}

func TestMaskDistinguishesZeroes(t *testing.T) {
	// The whole point of the mask: zeroed storage must not look like a
	// valid checksum of zero bytes.
	assert.NotEqual(t, uint32(0), CRC(0).Value())
	assert.NotEqual(t, uint32(New(make([]byte, 4))), New(make([]byte, 4)).Value())
}
