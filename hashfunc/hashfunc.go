package hashfunc

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"strings"

	"golang.org/x/exp/constraints"
)

// HashFunc - Function that reduces a key to an unsigned hash value.
// The value may be of any range, the hash map reduces it modulo the current
// bucket array size internally. For a good bucket spread the function should
// distribute its results over as many bits as possible.
type HashFunc[K any] func(key K) uint64

// CompareFunc - Function that compares two keys and returns a negative number when
// a sorts before b, a positive number when a sorts after b and zero (0) when they
// are equal. The hash map only ever tests the result for zero/non-zero, but the
// full contract lets the same function serve ordered containers as well.
type CompareFunc[K any] func(a, b K) int

// Bytes - Stock hash function for byte slice keys, implemented using
// crc32.ChecksumIEEE over the key.
func Bytes(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// String - Stock hash function for string keys, implemented using
// crc32.ChecksumIEEE over the raw bytes of the key.
func String(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// Integer - Stock hash function for keys of any integer type.
// The key is serialized to eight little endian bytes and run through
// crc32.ChecksumIEEE, which spreads dense key ranges over the full hash range.
func Integer[K constraints.Integer](key K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return uint64(crc32.ChecksumIEEE(buf[:]))
}

// CompareBytes - Stock compare function for byte slice keys
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareStrings - Stock compare function for string keys
func CompareStrings(a, b string) int {
	return strings.Compare(a, b)
}

// CompareOrdered - Stock compare function for any key type supporting the
// ordering operators, such as integers, floats and strings.
func CompareOrdered[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}

	return 0
}
