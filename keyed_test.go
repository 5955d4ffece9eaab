package vtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedStoreSweep(t *testing.T) {
	s := NewKeyedStore[int]()
	a, b := ColumnKey("a", 0), ColumnKey("b", 1)

	*s.Get(a, 1) = 10
	s.Get(b, 2)
	assert.Nil(t, s.Sweep())
	assert.Equal(t, 2, s.Len())

	// Only a is touched in this generation.
	assert.Equal(t, 10, *s.Get(a, 0))
	removed := s.Sweep()
	assert.Equal(t, map[Key]int{b: 2}, removed)

	_, ok := s.Lookup(b)
	assert.False(t, ok)
	v, ok := s.Lookup(a)
	assert.True(t, ok)
	assert.Equal(t, 10, *v)

	// Lookup does not keep an entry alive.
	assert.Equal(t, map[Key]int{a: 10}, s.Sweep())
	assert.Equal(t, 0, s.Len())
}

func TestKeyedStoreEachOrdered(t *testing.T) {
	s := NewKeyedStore[string]()
	for i, name := range []string{"x", "y", "z"} {
		s.Get(ColumnKey(name, i), name)
	}
	var prev Key
	n := 0
	s.Each(func(k Key, v *string) {
		if n > 0 {
			assert.Less(t, uint64(prev), uint64(k))
		}
		prev = k
		n++
	})
	assert.Equal(t, 3, n)
}

func TestDiff(t *testing.T) {
	k := func(i int) Key { return BlockKey(i * 20) }
	prev := map[Key]uint64{k(0): 1, k(1): 2, k(2): 3, k(3): 0}
	next := map[Key]uint64{k(0): 1, k(1): 5, k(3): 0, k(4): 9}

	d := Diff(prev, next)
	assert.Equal(t, []Key{k(0)}, d.Unchanged)
	assert.ElementsMatch(t, []Key{k(1), k(3)}, d.Changed)
	assert.Equal(t, []Key{k(2)}, d.Removed)
	assert.Equal(t, []Key{k(4)}, d.Added)

	assert.True(t, has(d.Changed, k(3)))
	assert.False(t, has(d.Changed, k(0)))
}

func TestColumnKey(t *testing.T) {
	assert.Equal(t, ColumnKey("price", 0), ColumnKey("price", 3))
	assert.NotEqual(t, ColumnKey("", 0), ColumnKey("", 1))
	assert.NotEqual(t, ColumnKey("price", 0), ColumnKey("qty", 0))
}
