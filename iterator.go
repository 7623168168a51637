package chainmap

import (
	"github.com/gostonefire/chainmap/internal/store/chained"
)

// Iterator - Is used to iterate over all entries of a hash map one by one, in
// bucket order and within a bucket in root-then-chain order. An iterator never
// copies or snapshots the map, it keeps only a bucket index and an optional
// chain position, and it re-reads the owning bucket on every step.
//
// It is well-defined to remove the key most recently returned by Next before
// calling Next again: the removal compaction promotes a chain head into a
// vacated bucket root and the iterator re-synchronizes on the promoted entry
// instead of following a stale chain link. Removing an already visited key has
// no effect on the remaining iteration, and removing a not yet visited key
// normally makes it get skipped.
//
// The iterator is bound to the map it was created from and, like the map
// itself, must only be used from one goroutine at a time.
type Iterator[K, V any] struct {
	hashMap *HashMap[K, V]
	cursor  *chained.Cursor[K, V]
}

// Iterator - Returns a new Iterator positioned before the first entry of the
// hash map. Every call returns an independent iterator.
func (H *HashMap[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		hashMap: H,
		cursor:  chained.NewCursor(H.table),
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call
// to Next
func (I *Iterator[K, V]) HasNext() bool {
	_, ok := I.cursor.Peek()
	return ok
}

// Peek - Returns the key at the current position without advancing the
// iterator. Peek never mutates iterator state, only Next advances the position.
//
// It returns:
//   - key is the key at the current position
//   - err is of type NoEntryFound if the iteration is exhausted
func (I *Iterator[K, V]) Peek() (key K, err error) {
	key, ok := I.cursor.Peek()
	if !ok {
		err = NoEntryFound{}
	}

	return
}

// Next - Returns the key at the current position and advances the iterator.
// Once the iteration is exhausted it keeps returning an error of type
// NoEntryFound on every subsequent call.
//
// It returns:
//   - key is the key at the current position
//   - err is of type NoEntryFound if the iteration is exhausted
func (I *Iterator[K, V]) Next() (key K, err error) {
	key, ok := I.cursor.Next()
	if !ok {
		err = NoEntryFound{}
	}

	return
}

// PeekValue - Returns the value of the entry at the current position without
// advancing the iterator. The value is looked up through Get at call time, so
// it reflects the current state of the map rather than a cached copy, at the
// cost of one extra lookup.
//
// It returns:
//   - value is the value of the entry at the current position
//   - err is of type NoEntryFound if the iteration is exhausted
func (I *Iterator[K, V]) PeekValue() (value V, err error) {
	key, err := I.Peek()
	if err != nil {
		return
	}

	value, err = I.hashMap.Get(key)

	return
}

// NextValue - Returns the value of the entry at the current position and
// advances the iterator. The value is looked up through Get at call time, so
// it reflects the current state of the map rather than a cached copy, at the
// cost of one extra lookup.
//
// It returns:
//   - value is the value of the entry at the current position
//   - err is of type NoEntryFound if the iteration is exhausted
func (I *Iterator[K, V]) NextValue() (value V, err error) {
	key, err := I.Next()
	if err != nil {
		return
	}

	value, err = I.hashMap.Get(key)

	return
}
