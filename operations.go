package chainmap

import (
	"fmt"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type NoEntryFound is also returned.
//   - err is of type NoEntryFound if no entry matched the key
func (H *HashMap[K, V]) Get(key K) (value V, err error) {
	value, ok := H.table.Get(key)
	if !ok {
		err = NoEntryFound{}
	}

	return
}

// ContainsKey - Returns whether an entry with the given key is present in the
// hash map
//   - key is the identifier of an entry
func (H *HashMap[K, V]) ContainsKey(key K) bool {
	_, err := H.Get(key)
	return err == nil
}

// Put - Updates an existing entry with a new value or adds the entry if no
// existing one is found with the same key. A replace happens in place and leaves
// both the entry count and the bucket structure untouched, while a new key may
// first trigger a doubling of the bucket array when the load factor has reached
// the growth threshold.
//   - key is the identifier of the entry
//   - value is the value to store under key
//
// It returns:
//   - previous is the value that was replaced, or the zero value if the key was new
//   - replaced is true if an existing entry had its value replaced
func (H *HashMap[K, V]) Put(key K, value V) (previous V, replaced bool) {
	return H.table.Set(key, value)
}

// Remove - Removes the entry that corresponds to the given key from the hash map
// and returns it in full. A removed bucket root with a chain gets the chain head
// entry promoted into its place, so all remaining entries stay reachable.
//   - key is the identifier of an entry
//
// It returns:
//   - entry is the removed key/value pair if found, if not found an error of type NoEntryFound is also returned.
//   - err is of type NoEntryFound if no entry matched the key
func (H *HashMap[K, V]) Remove(key K) (entry Entry[K, V], err error) {
	removedKey, removedValue, ok := H.table.Remove(key)
	if !ok {
		err = NoEntryFound{}
		return
	}

	entry = Entry[K, V]{Key: removedKey, Value: removedValue}

	return
}

// Pop - Returns the value corresponding to key and removes the entry from the
// hash map.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type NoEntryFound is also returned.
//   - err is of type NoEntryFound if no entry matched the key
func (H *HashMap[K, V]) Pop(key K) (value V, err error) {
	entry, err := H.Remove(key)
	if err != nil {
		return
	}

	value = entry.Value

	return
}

// Grow - Grows the bucket array by the given factor and rehashes all entries
// into it. Every entry keeps its key and value identity, only its bucket
// placement changes. A factor of 1 rehashes into a same size array.
//   - factor is the multiplier for the new bucket array size, it must be 1 or higher
//
// It returns:
//   - err is a normal Go error if the factor is invalid
func (H *HashMap[K, V]) Grow(factor int) (err error) {
	if factor < 1 {
		err = fmt.Errorf("factor must be a positive value of at least 1 (one)")
		return
	}

	H.table.Grow(factor)

	return
}

// Clear - Removes all entries from the hash map, leaving Count at 0 (zero) and
// the bucket array at its current size
func (H *HashMap[K, V]) Clear() {
	H.table.Clear()
}

// Stat - Walks through the entire bucket array and produces a HashMapStat struct
// with information on how entries are spread over bucket roots and chains.
// For a very big map the HashMapStat.BucketDistribution slice can be memory
// heavy (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length Size with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int, H.Size())
	}

	// Iterate over every available bucket
	for i := 0; i < H.Size(); i++ {
		rootRecords, chainRecords := H.table.BucketStat(i)

		hms.Records += rootRecords + chainRecords
		hms.RootRecords += rootRecords
		hms.ChainRecords += chainRecords
		if includeDistribution {
			hms.BucketDistribution[i] = rootRecords + chainRecords
		}
	}

	hashMapStat = &hms
	return
}

// Range - Calls f for every entry in the hash map until f returns false.
// The walk runs over a fresh iterator, so the same removal guarantees apply:
// removing the entry most recently handed to f is well-defined. Values are read
// through Get at the time of the call, hence they reflect the current state of
// the map rather than a cached copy.
//   - f is the function receiving each key/value pair, returning false stops the walk
func (H *HashMap[K, V]) Range(f func(key K, value V) bool) {
	iter := H.Iterator()
	for {
		key, err := iter.Next()
		if err != nil {
			return
		}

		value, err := H.Get(key)
		if err != nil {
			// The iterator can hand out a key that was removed from
			// under it during the walk, skip it
			continue
		}

		if !f(key, value) {
			return
		}
	}
}
