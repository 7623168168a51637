// Package chained implements the in-memory Separate Chaining Collision Resolution
// Technique behind the public hash map. Buckets live inline in one fixed size
// slice and every key colliding past the first in its bucket is kept in a singly
// linked chain of heap allocated nodes hanging off the bucket slot.
package chained

import (
	"github.com/gostonefire/chainmap/hashfunc"
)

// loadFactor - Fill grade at which the bucket array is doubled, checked on every
// Set before the new entry is written
const loadFactor float64 = 0.5

// node - One overflow entry in a bucket chain. A node is exclusively owned by its
// predecessor, i.e. the bucket slot for the chain head and the prior node for the
// rest, and unlinking a node transfers ownership of its successor to the predecessor.
type node[K, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// slot - One bucket, embedded inline in the bucket array. The root entry of a
// bucket lives directly in the slot, occupied tells whether it holds live data
// (explicit state instead of a reserved key sentinel, which keeps zero value
// keys and values legal data).
type slot[K, V any] struct {
	key      K
	value    V
	occupied bool
	next     *node[K, V]
}

// Table - Represents an implementation of in-memory storage for the Separate
// Chaining Collision Resolution Technique. It owns the bucket array and all
// chain nodes, but never the keys and values themselves.
type Table[K, V any] struct {
	slots   []slot[K, V]
	count   int
	hash    hashfunc.HashFunc[K]
	compare hashfunc.CompareFunc[K]
}

// NewTable - Returns a pointer to a new Table instance with initialSize buckets.
// The caller is expected to have validated initialSize to be higher than 0 (zero)
// and both functions to be non nil.
//   - initialSize is the number of buckets in the initial bucket array
//   - hash is the function that reduces a key to an unsigned hash value
//   - compare is the function that returns 0 (zero) exactly when two keys are equal
func NewTable[K, V any](
	initialSize int,
	hash hashfunc.HashFunc[K],
	compare hashfunc.CompareFunc[K],
) *Table[K, V] {

	return &Table[K, V]{
		slots:   make([]slot[K, V], initialSize),
		hash:    hash,
		compare: compare,
	}
}

// Count - Returns the number of live entries reachable from the bucket array
func (T *Table[K, V]) Count() int {
	return T.count
}

// Size - Returns the current length of the bucket array
func (T *Table[K, V]) Size() int {
	return len(T.slots)
}

// BucketNo - Returns which bucket number the given key hashes to given the
// current bucket array size
func (T *Table[K, V]) BucketNo(key K) int {
	return int(T.hash(key) % uint64(len(T.slots)))
}

// Get - Returns the value stored under the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry, or the zero value if none was found
//   - ok is true if an entry with a matching key exists
func (T *Table[K, V]) Get(key K) (value V, ok bool) {
	if T.count == 0 {
		return
	}

	s := &T.slots[T.BucketNo(key)]
	if !s.occupied {
		return
	}

	// Root entry first, then down the chain
	if T.compare(key, s.key) == 0 {
		value = s.value
		ok = true
		return
	}
	for n := s.next; n != nil; n = n.next {
		if T.compare(key, n.key) == 0 {
			value = n.value
			ok = true
			return
		}
	}

	return
}

// Set - Updates an existing entry with a new value or adds the entry if no
// existing one is found with the same key. The capacity check runs before the
// new entry is written, so the load factor is judged on the state just prior
// to insertion.
//   - key is the identifier of the entry
//   - value is the value to store under key
//
// It returns:
//   - previous is the value that was replaced, or the zero value if the key was new
//   - replaced is true if an existing entry had its value replaced in place
func (T *Table[K, V]) Set(key K, value V) (previous V, replaced bool) {
	T.ensureCapacity()

	s := &T.slots[T.BucketNo(key)]

	// Never used slot, the entry becomes the bucket root
	if !s.occupied {
		s.key = key
		s.value = value
		s.occupied = true
		T.count++
		return
	}

	// Replacing keeps chain identity intact and leaves count untouched
	if T.compare(key, s.key) == 0 {
		previous = s.value
		replaced = true
		s.value = value
		return
	}
	var last *node[K, V]
	for n := s.next; n != nil; n = n.next {
		if T.compare(key, n.key) == 0 {
			previous = n.value
			replaced = true
			n.value = value
			return
		}
		last = n
	}

	// New key in an occupied bucket, append at the tail of the chain
	fresh := &node[K, V]{key: key, value: value}
	if last == nil {
		s.next = fresh
	} else {
		last.next = fresh
	}
	T.count++

	return
}

// Remove - Removes the entry stored under the given key and hands it back.
// A matching bucket root with a chain gets the chain head entry promoted into
// the slot, so a bucket root is always populated as long as the bucket holds
// any entry at all. A matching chain node is unlinked from its predecessor.
//   - key is the identifier of the entry
//
// It returns:
//   - removedKey is the key of the removed entry, or the zero value if none was found
//   - removedValue is the value of the removed entry, or the zero value if none was found
//   - ok is true if an entry with a matching key was removed
func (T *Table[K, V]) Remove(key K) (removedKey K, removedValue V, ok bool) {
	s := &T.slots[T.BucketNo(key)]
	if !s.occupied {
		return
	}

	if T.compare(key, s.key) == 0 {
		removedKey = s.key
		removedValue = s.value
		ok = true

		if first := s.next; first != nil {
			// Promote the chain head into the root slot
			s.key = first.key
			s.value = first.value
			s.next = first.next
		} else {
			var zeroK K
			var zeroV V
			s.key = zeroK
			s.value = zeroV
			s.occupied = false
		}
		T.decrementCount()
		return
	}

	for link := &s.next; *link != nil; link = &(*link).next {
		n := *link
		if T.compare(key, n.key) == 0 {
			removedKey = n.key
			removedValue = n.value
			ok = true

			*link = n.next
			T.decrementCount()
			return
		}
	}

	return
}

// Clear - Removes every entry by detaching all chains and resetting all bucket
// slots. The entry count must land on exactly 0 (zero) afterwards, anything
// else is a corrupted structure and panics.
func (T *Table[K, V]) Clear() {
	for i := range T.slots {
		s := &T.slots[i]
		if !s.occupied {
			continue
		}

		for n := s.next; n != nil; n = n.next {
			T.decrementCount()
		}

		*s = slot[K, V]{}
		T.decrementCount()
	}

	if T.count != 0 {
		panic("chained: entry count not zero after clear")
	}
}

// Grow - Rehashes all entries into a new bucket array that is factor times the
// current size. The count is reset and rebuilt by replaying Set for the root
// entry and then each chain node of every old bucket in order, which keeps the
// rehash on the exact same insert path as ordinary writes.
//   - factor is the multiplier for the new bucket array size
func (T *Table[K, V]) Grow(factor int) {
	old := T.slots
	T.slots = make([]slot[K, V], len(old)*factor)
	T.count = 0

	for i := range old {
		s := &old[i]
		if !s.occupied {
			continue
		}

		T.Set(s.key, s.value)
		for n := s.next; n != nil; n = n.next {
			T.Set(n.key, n.value)
		}
	}
}

// BucketStat - Returns how many live entries the given bucket holds, split on
// the root slot and the overflow chain
//   - bucketNo is the bucket to inspect, in the range 0 to Size() - 1
func (T *Table[K, V]) BucketStat(bucketNo int) (rootRecords, chainRecords int) {
	s := &T.slots[bucketNo]
	if !s.occupied {
		return
	}

	rootRecords = 1
	for n := s.next; n != nil; n = n.next {
		chainRecords++
	}

	return
}

// ensureCapacity - Doubles the bucket array once the load factor reaches the
// growth threshold
func (T *Table[K, V]) ensureCapacity() {
	if float64(T.count)/float64(len(T.slots)) < loadFactor {
		return
	}

	T.Grow(2)
}

// decrementCount - Decrements the entry count and guards the count invariant
func (T *Table[K, V]) decrementCount() {
	T.count--
	if T.count < 0 {
		panic("chained: entry count below zero")
	}
}
