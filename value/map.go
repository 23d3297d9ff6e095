package value

import (
	"golang.org/x/exp/slices"
)

// Entry is a single key/value association of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map associates unique keys with values. Entries are kept sorted by key
// according to Compare, so iteration always follows the key order.
//
// The zero Map is empty and ready to use.
type Map struct {
	entries []Entry
}

// NewMap builds a Map from entries. When the same key occurs more than once
// the later entry wins.
func NewMap(entries ...Entry) Map {
	var b MapBuilder
	for _, e := range entries {
		b.Insert(e.Key, e.Value)
	}
	return b.Map()
}

// Len returns the number of entries.
func (m Map) Len() int {
	return len(m.entries)
}

func (m Map) search(key Value) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e Entry, k Value) int {
		return Compare(e.Key, k)
	})
}

// Get returns the value stored under key.
func (m Map) Get(key Value) (Value, bool) {
	i, found := m.search(key)
	if !found {
		return nil, false
	}
	return m.entries[i].Value, true
}

// With returns a copy of m with key set to val.
func (m Map) With(key, val Value) Map {
	b := MapBuilder{entries: slices.Clone(m.entries)}
	b.Insert(key, val)
	return b.Map()
}

// Keys returns the keys in sort order.
func (m Map) Keys() []Value {
	keys := make([]Value, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in key order.
func (m Map) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Range calls fn for each entry in key order until fn returns false.
func (m Map) Range(fn func(key, val Value) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// MapBuilder accumulates entries for a Map under construction.
type MapBuilder struct {
	entries []Entry
}

// Insert stores val under key, replacing any earlier value for an equal key.
func (b *MapBuilder) Insert(key, val Value) {
	m := Map{entries: b.entries}
	i, found := m.search(key)
	if found {
		b.entries[i].Value = val
		return
	}
	b.entries = slices.Insert(b.entries, i, Entry{Key: key, Value: val})
}

// Len returns the number of entries inserted so far.
func (b *MapBuilder) Len() int {
	return len(b.entries)
}

// Map returns the built Map. The builder must not be used afterwards.
func (b *MapBuilder) Map() Map {
	m := Map{entries: b.entries}
	b.entries = nil
	return m
}
