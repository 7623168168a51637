// Package chainmap provides a generic key/value hash map with a fixed size
// bucket array and collision resolution by chaining, the in-memory sibling of
// the file backed hash map. Keys are opaque to the map, both hashing and
// equality are delegated to caller supplied functions, and the map never owns
// key or value data, only the bucket array and the chain nodes.
//
// The map is not safe for concurrent use. All guarantees, including the ones
// about removing entries in the middle of an iteration, apply to a single
// goroutine interleaving calls on one map instance.
package chainmap

import (
	"fmt"

	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/store/chained"
)

// Entry - Represents one key/value pair stored in the hash map
type Entry[K, V any] struct {
	Key   K
	Value V
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - RootRecords is the number of entries stored directly in bucket slots
//   - ChainRecords is the number of entries that ended up in overflow chains
//   - BucketDistribution is the number of entries stored in each available bucket
type HashMapStat struct {
	Records            int
	RootRecords        int
	ChainRecords       int
	BucketDistribution []int
}

// HashMap - The main implementation struct
type HashMap[K, V any] struct {
	table *chained.Table[K, V]
}

// New - Returns a new HashMap prepared with an initial number of buckets.
// The bucket array doubles automatically whenever the load factor, entry count
// over bucket array size, reaches 0.5 on a write. The growth happens
// synchronously inside that Put call, so an occasional write pays the full
// rehash cost.
//   - initialSize is the initial length of the bucket array, it must be higher than 0 (zero)
//   - hash is the function that reduces a key to an unsigned hash value, the map reduces it modulo the current bucket array size
//   - compare is the function comparing two keys, it must return 0 (zero) exactly when they are equal
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal Go error which should be nil if everything went ok
func New[K, V any](
	initialSize int,
	hash hashfunc.HashFunc[K],
	compare hashfunc.CompareFunc[K],
) (
	hashMap *HashMap[K, V],
	err error,
) {

	// Check if initialSize is valid
	if initialSize <= 0 {
		err = fmt.Errorf("initialSize must be a positive value higher than 0 (zero)")
		return
	}

	// Check that the caller supplied the two key functions
	if hash == nil {
		err = fmt.Errorf("hash function can not be nil, the map performs no key hashing itself")
		return
	}
	if compare == nil {
		err = fmt.Errorf("compare function can not be nil, the map performs no key comparison itself")
		return
	}

	hashMap = &HashMap[K, V]{
		table: chained.NewTable[K, V](initialSize, hash, compare),
	}

	return
}

// Count - Returns the number of entries currently stored in the hash map
func (H *HashMap[K, V]) Count() int {
	return H.table.Count()
}

// Size - Returns the current length of the bucket array
func (H *HashMap[K, V]) Size() int {
	return H.table.Size()
}

// BucketNo - Returns which bucket number the given key results in, given the
// current bucket array size. The number changes when the bucket array grows.
//   - key is the identifier of an entry
func (H *HashMap[K, V]) BucketNo(key K) (bucketNo int) {
	return H.table.BucketNo(key)
}
