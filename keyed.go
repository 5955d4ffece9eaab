package vtable

import "sort"

// keyedEntry wraps a value with the generation it was last touched in.
type keyedEntry[T any] struct {
	value T
	gen   uint64
}

// KeyedStore maps stable keys to the state last rendered for them. Entries
// not touched since the previous Sweep are dropped, so state follows keys
// across re-layouts instead of positions.
//
// Usage:
//
//	store := vtable.NewKeyedStore[surfaceSet]()
//	for _, col := range columns {
//	    s := store.Get(col.Key, surfaceSet{})
//	    // s is *surfaceSet and stays valid until the key disappears
//	}
//	removed := store.Sweep()
type KeyedStore[T any] struct {
	entries map[Key]*keyedEntry[T]
	gen     uint64
}

// NewKeyedStore creates an empty store.
func NewKeyedStore[T any]() *KeyedStore[T] {
	return &KeyedStore[T]{entries: make(map[Key]*keyedEntry[T])}
}

// Get returns the state for key, creating it from def if missing, and marks
// it live for the current generation.
func (s *KeyedStore[T]) Get(key Key, def T) *T {
	if e, ok := s.entries[key]; ok {
		e.gen = s.gen
		return &e.value
	}
	e := &keyedEntry[T]{value: def, gen: s.gen}
	s.entries[key] = e
	return &e.value
}

// Lookup returns the state for key without creating or touching it.
func (s *KeyedStore[T]) Lookup(key Key) (*T, bool) {
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// Sweep removes entries not touched in the current generation, starts a new
// generation and returns the removed keys with their last values.
func (s *KeyedStore[T]) Sweep() map[Key]T {
	var removed map[Key]T
	for k, e := range s.entries {
		if e.gen != s.gen {
			if removed == nil {
				removed = make(map[Key]T)
			}
			removed[k] = e.value
			delete(s.entries, k)
		}
	}
	s.gen++
	return removed
}

// Len returns the number of stored entries.
func (s *KeyedStore[T]) Len() int {
	return len(s.entries)
}

// Each calls fn for every entry in key order.
func (s *KeyedStore[T]) Each(fn func(Key, *T)) {
	keys := make([]Key, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fn(k, &s.entries[k].value)
	}
}

// KeyDiff is the result of comparing two keyed snapshots.
type KeyDiff struct {
	Added     []Key
	Removed   []Key
	Changed   []Key
	Unchanged []Key
}

// Diff compares content hashes keyed by identity. A zero hash never counts
// as unchanged.
func Diff(prev, next map[Key]uint64) KeyDiff {
	var d KeyDiff
	for k, h := range next {
		old, ok := prev[k]
		switch {
		case !ok:
			d.Added = append(d.Added, k)
		case h == 0 || old != h:
			d.Changed = append(d.Changed, k)
		default:
			d.Unchanged = append(d.Unchanged, k)
		}
	}
	for k := range prev {
		if _, ok := next[k]; !ok {
			d.Removed = append(d.Removed, k)
		}
	}
	for _, ks := range [][]Key{d.Added, d.Removed, d.Changed, d.Unchanged} {
		sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
	}
	return d
}

// has reports whether k is in keys.
func has(keys []Key, k Key) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}
