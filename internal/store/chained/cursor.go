package chained

// Cursor - Is used to walk all entries of a Table one by one, in bucket order and
// within a bucket in root-then-chain order. A cursor never snapshots the table,
// it is an explicit state machine over the current bucket index and an optional
// chain node, and it re-reads the owning slot's chain on every step. That makes
// it safe for the caller to remove the key most recently handed out before asking
// for the next one: the removal compaction always promotes a chain head into a
// vacated root slot, and the cursor detects that promotion instead of following
// a stale link.
//
// Removing a not yet visited key is also safe and normally makes that key get
// skipped, with one documented exception: when the removed key is the exact chain
// node the cursor is parked on and the chain does not collapse, that key is still
// handed out once before the walk continues on the survivors. Removing an already
// visited key never affects the remainder of the walk.
type Cursor[K, V any] struct {
	table *Table[K, V]
	index int
	chain *node[K, V]
}

// NewCursor - Returns a pointer to a new Cursor positioned before the first
// entry of the given table
func NewCursor[K, V any](table *Table[K, V]) *Cursor[K, V] {
	return &Cursor[K, V]{table: table}
}

// Peek - Returns the key the cursor is currently positioned on without advancing.
// Peek never mutates cursor state, the position is advanced by Next alone, hence
// interleaved Peek/Next/Remove usage cannot duplicate or skip keys on account
// of Peek.
//
// It returns:
//   - key is the key at the current position, or the zero value if the walk is exhausted
//   - ok is false if there are no more entries to visit
func (C *Cursor[K, V]) Peek() (key K, ok bool) {
	if C.chain != nil {
		key = C.chain.key
		ok = true
		return
	}

	for i := C.index; i < len(C.table.slots); i++ {
		if C.table.slots[i].occupied {
			key = C.table.slots[i].key
			ok = true
			return
		}
	}

	return
}

// Next - Returns the key the cursor is currently positioned on and advances to
// the next position. Once the walk is exhausted it keeps reporting so on every
// subsequent call.
//
// It returns:
//   - key is the key at the current position, or the zero value if the walk is exhausted
//   - ok is false if there are no more entries to visit
func (C *Cursor[K, V]) Next() (key K, ok bool) {
	t := C.table

	if n := C.chain; n != nil {
		parent := &t.slots[C.index]

		if parent.next == nil {
			// The chain we were parked in is gone from the owning slot,
			// meaning our node was removed and its entry promoted into
			// the slot. Resync on the slot entry rather than the node.
			C.chain = nil
			C.index++
			if !parent.occupied {
				// Both the node and the root went away, nothing left
				// in this bucket to hand out
				return C.Next()
			}
			key = parent.key
			ok = true
			return
		}

		if n.next == nil {
			C.index++
		}
		C.chain = n.next
		key = n.key
		ok = true
		return
	}

	for ; C.index < len(t.slots); C.index++ {
		s := &t.slots[C.index]
		if !s.occupied {
			continue
		}

		key = s.key
		ok = true
		if s.next != nil {
			// The root entry counts as visited by being handed out now,
			// the chain is walked on the following calls with the index
			// parked on this bucket
			C.chain = s.next
		} else {
			C.index++
		}
		return
	}

	return
}
