//go:build unit

package chained

import (
	"testing"

	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/stretchr/testify/assert"
)

// identityHash - Hash function giving full control over bucket placement in tests
func identityHash(key int) uint64 {
	return uint64(key)
}

func newTestTable(size int) *Table[int, string] {
	return NewTable[int, string](size, identityHash, hashfunc.CompareOrdered[int])
}

func TestTable_Set(t *testing.T) {
	t.Run("installs entry in empty slot", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)

		// Execute
		previous, replaced := table.Set(1, "a")

		// Check
		assert.False(t, replaced, "no previous value for a new key")
		assert.Equal(t, "", previous, "zero value previous for a new key")
		assert.Equal(t, 1, table.Count(), "count incremented")

		value, ok := table.Get(1)
		assert.True(t, ok, "entry found")
		assert.Equal(t, "a", value, "correct value")
	})

	t.Run("replaces value in place and returns previous", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")

		// Execute
		previous, replaced := table.Set(1, "b")

		// Check
		assert.True(t, replaced, "existing key was replaced")
		assert.Equal(t, "a", previous, "previous value returned")
		assert.Equal(t, 1, table.Count(), "count unchanged by replace")

		value, ok := table.Get(1)
		assert.True(t, ok, "entry found")
		assert.Equal(t, "b", value, "new value stored")
	})

	t.Run("appends colliding keys at the tail of the chain", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)

		// Execute
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")

		// Check
		assert.Equal(t, 3, table.Count(), "three live entries")

		s := &table.slots[1]
		assert.True(t, s.occupied, "root slot occupied")
		assert.Equal(t, 1, s.key, "first key stays in the root slot")
		assert.Equal(t, 9, s.next.key, "second key is the chain head")
		assert.Equal(t, 17, s.next.next.key, "third key appended at the tail")
		assert.Nil(t, s.next.next.next, "chain ends after the tail")
	})

	t.Run("replaces value in a chain node without structural change", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")
		head := table.slots[1].next

		// Execute
		previous, replaced := table.Set(9, "B")

		// Check
		assert.True(t, replaced, "existing chain key was replaced")
		assert.Equal(t, "b", previous, "previous value returned")
		assert.Equal(t, 3, table.Count(), "count unchanged by replace")
		assert.Same(t, head, table.slots[1].next, "chain node identity preserved")

		value, ok := table.Get(9)
		assert.True(t, ok, "entry found")
		assert.Equal(t, "B", value, "new value stored")
	})

	t.Run("zero value key and value are legal data", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)

		// Execute
		table.Set(0, "")

		// Check
		assert.Equal(t, 1, table.Count(), "zero key counted")
		value, ok := table.Get(0)
		assert.True(t, ok, "zero key found")
		assert.Equal(t, "", value, "empty value stored")
	})
}

func TestTable_Get(t *testing.T) {
	t.Run("not found in empty table", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)

		// Execute
		_, ok := table.Get(1)

		// Check
		assert.False(t, ok, "nothing found in an empty table")
	})

	t.Run("not found in occupied bucket without the key", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")

		// Execute
		_, ok := table.Get(17)

		// Check
		assert.False(t, ok, "key 17 shares the bucket but is not present")
	})

	t.Run("finds root and chain entries", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")

		// Execute / Check
		for key, expected := range map[int]string{1: "a", 9: "b", 17: "c"} {
			value, ok := table.Get(key)
			assert.True(t, ok, "entry found")
			assert.Equal(t, expected, value, "correct value for key")
		}
	})
}

func TestTable_Remove(t *testing.T) {
	t.Run("clears a chainless root slot", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")

		// Execute
		removedKey, removedValue, ok := table.Remove(1)

		// Check
		assert.True(t, ok, "entry removed")
		assert.Equal(t, 1, removedKey, "removed key returned")
		assert.Equal(t, "a", removedValue, "removed value returned")
		assert.Equal(t, 0, table.Count(), "count decremented")
		assert.False(t, table.slots[1].occupied, "slot marked empty")

		_, ok = table.Get(1)
		assert.False(t, ok, "removed key no longer found")
	})

	t.Run("promotes the chain head into a removed root slot", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")

		// Execute
		_, removedValue, ok := table.Remove(1)

		// Check
		assert.True(t, ok, "entry removed")
		assert.Equal(t, "a", removedValue, "removed value returned")
		assert.Equal(t, 2, table.Count(), "count decremented")

		s := &table.slots[1]
		assert.True(t, s.occupied, "root slot stays populated")
		assert.Equal(t, 9, s.key, "chain head promoted into the root slot")
		assert.Equal(t, 17, s.next.key, "remainder of the chain preserved")
		assert.Nil(t, s.next.next, "chain shortened by one")

		value, ok := table.Get(9)
		assert.True(t, ok, "promoted entry reachable")
		assert.Equal(t, "b", value, "promoted entry kept its value")
	})

	t.Run("unlinks a mid-chain node", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")

		// Execute
		_, removedValue, ok := table.Remove(9)

		// Check
		assert.True(t, ok, "entry removed")
		assert.Equal(t, "b", removedValue, "removed value returned")
		assert.Equal(t, 2, table.Count(), "count decremented")

		s := &table.slots[1]
		assert.Equal(t, 1, s.key, "root untouched")
		assert.Equal(t, 17, s.next.key, "predecessor relinked to skip the node")
		assert.Nil(t, s.next.next, "chain ends after the survivor")
	})

	t.Run("unlinks the chain tail", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")

		// Execute
		_, _, ok := table.Remove(17)

		// Check
		assert.True(t, ok, "entry removed")
		assert.Equal(t, 9, table.slots[1].next.key, "chain head untouched")
		assert.Nil(t, table.slots[1].next.next, "tail unlinked")
	})

	t.Run("reports not found without touching the count", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")

		// Execute
		_, _, ok := table.Remove(2)

		// Check
		assert.False(t, ok, "nothing removed")
		assert.Equal(t, 1, table.Count(), "count unchanged")
	})
}

func TestTable_Clear(t *testing.T) {
	t.Run("drops all entries and chains", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")
		table.Set(2, "d")

		// Execute
		table.Clear()

		// Check
		assert.Equal(t, 0, table.Count(), "count reaches exactly zero")
		assert.Equal(t, 8, table.Size(), "bucket array size untouched")
		for _, key := range []int{1, 9, 17, 2} {
			_, ok := table.Get(key)
			assert.False(t, ok, "previously present key reports not found")
		}
	})

	t.Run("is a no-op on an empty table", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)

		// Execute
		table.Clear()

		// Check
		assert.Equal(t, 0, table.Count(), "count stays zero")
	})
}

func TestTable_Grow(t *testing.T) {
	t.Run("rehashes all entries into the larger array", func(t *testing.T) {
		// Prepare
		table := newTestTable(4)
		// Key 5 collides with 1 at size 4 but lands in its own bucket at size 8
		table.Set(1, "a")
		table.Set(5, "b")

		// Execute
		table.Grow(2)

		// Check
		assert.Equal(t, 8, table.Size(), "bucket array doubled")
		assert.Equal(t, 2, table.Count(), "count rebuilt to the same number")
		assert.Equal(t, 1, table.slots[1].key, "key 1 in bucket 1")
		assert.Nil(t, table.slots[1].next, "no chain left in bucket 1")
		assert.Equal(t, 5, table.slots[5].key, "key 5 rehashed to bucket 5")
	})

	t.Run("keeps every entry reachable over a grow", func(t *testing.T) {
		// Prepare
		table := newTestTable(16)
		for i := 0; i < 8; i++ {
			table.Set(i*16+3, "x")
		}
		assert.Equal(t, 8, table.Count(), "all keys collide into bucket 3")

		// Execute
		table.Grow(4)

		// Check
		assert.Equal(t, 64, table.Size(), "bucket array grown by factor 4")
		assert.Equal(t, 8, table.Count(), "no entry lost or duplicated")
		for i := 0; i < 8; i++ {
			_, ok := table.Get(i*16 + 3)
			assert.True(t, ok, "entry reachable after grow")
		}
	})
}

func TestTable_EnsureCapacity(t *testing.T) {
	t.Run("doubles the array when the load factor reaches one half", func(t *testing.T) {
		// Prepare
		table := newTestTable(4)
		table.Set(1, "a")
		table.Set(2, "b")

		// Execute
		// The load factor just prior to this insert is 2/4, which is at the
		// growth threshold, so the array doubles before the write
		table.Set(3, "c")

		// Check
		assert.Equal(t, 8, table.Size(), "bucket array doubled before the insert")
		assert.Equal(t, 3, table.Count(), "all entries live")
		for _, key := range []int{1, 2, 3} {
			_, ok := table.Get(key)
			assert.True(t, ok, "entry reachable after automatic grow")
		}
	})

	t.Run("leaves the array alone below the threshold", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(2, "b")
		table.Set(3, "c")

		// Execute / Check
		assert.Equal(t, 8, table.Size(), "load factor below one half, no grow")
	})
}

func TestTable_BucketStat(t *testing.T) {
	t.Run("splits entries on root and chain", func(t *testing.T) {
		// Prepare
		table := newTestTable(8)
		table.Set(1, "a")
		table.Set(9, "b")
		table.Set(17, "c")
		table.Set(2, "d")

		// Execute
		rootRecords1, chainRecords1 := table.BucketStat(1)
		rootRecords2, chainRecords2 := table.BucketStat(2)
		rootRecords3, chainRecords3 := table.BucketStat(3)

		// Check
		assert.Equal(t, 1, rootRecords1, "one root entry in bucket 1")
		assert.Equal(t, 2, chainRecords1, "two chain entries in bucket 1")
		assert.Equal(t, 1, rootRecords2, "one root entry in bucket 2")
		assert.Equal(t, 0, chainRecords2, "no chain in bucket 2")
		assert.Equal(t, 0, rootRecords3, "bucket 3 empty")
		assert.Equal(t, 0, chainRecords3, "bucket 3 empty")
	})
}
