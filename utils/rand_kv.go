package utils

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	randStr = rand.New(rand.NewSource(time.Now().UnixNano()))
	letters = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
)

// GetTestKey returns a deterministic test key for i.
func GetTestKey(i int) []byte {
	return []byte(fmt.Sprintf("logkv-go-key-%09d", i))
}

// RandomValue returns a random value of n bytes plus a fixed prefix.
func RandomValue(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[randStr.Intn(len(letters))]
	}
	return append([]byte("logkv-go-value-"), b...)
}
