package probemap

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrKeyNotFound = errors.New("key not found")

// Map is a string-keyed hash table using open addressing with linear probing.
// Keys are restricted to Alphabet and hashed with Hash.
//
// The table grows by doubling as soon as fewer than the growth buffer of slots
// remain free, so probe chains always end at an empty slot. It never shrinks.
// Deletion does not leave tombstones: the freed slot is emptied and every
// remaining entry is placed again, which makes Delete O(capacity). Colliding
// keys are resolved by a forward scan, so in the worst case every operation
// is O(capacity) as well.
//
// Map is not safe for concurrent use. Callers sharing a Map across goroutines
// must guard every call, iterations included, with a single mutex.
type Map[V any] struct {
	table[V]
}

// Pair is a key and value used to populate a Map on construction.
type Pair[V any] struct {
	Key   string
	Value V
}

// Populates a new map with the given pairs, in order, as if by Set.
func WithPairs[V any](pairs ...Pair[V]) Option[V] {
	return func(t *table[V]) {
		t.pending = append(t.pending, pairs...)
	}
}

// Returns a new map with DefaultCapacity slots unless overridden by opts.
func New[V any](opts ...Option[V]) (*Map[V], error) {
	var m Map[V]
	if err := m.init(opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Returns the value stored under key.
// Fails with ErrKeyNotFound if the key is absent. A key outside of Alphabet
// is never stored, so its error also wraps ErrInvalidKey.
func (m *Map[V]) Get(key string) (V, error) {
	e, err := m.find(key)
	if err != nil {
		var zero V
		return zero, err
	}

	return e.value, nil
}

// Lookup is the comma-ok form of Get.
func (m *Map[V]) Lookup(key string) (V, bool) {
	return m.get(key)
}

// Stores value under key, overwriting any previous value.
// An invalid key is rejected with ErrInvalidKey and leaves the map untouched.
func (m *Map[V]) Set(key string, value V) error {
	return m.set(key, value)
}

// Removes key from the map. Deleting an absent key is a no-op.
// Returns whether the key was present.
func (m *Map[V]) Delete(key string) bool {
	return m.delete(key)
}

func (m *Map[V]) Contains(key string) bool {
	_, ok := m.get(key)
	return ok
}

// Len returns the number of stored keys.
func (m *Map[V]) Len() int {
	return m.size
}

// Capacity returns the current number of slots.
func (m *Map[V]) Capacity() int {
	return m.capacity
}

// Grow doubles the capacity and places every entry again.
func (m *Map[V]) Grow() {
	m.grow()
}

// Keys yields every stored key in slot order, which is neither insertion nor
// sorted order. The map must not be modified until the iteration ends.
func (m *Map[V]) Keys() iter.Seq[string] {
	return m.keys()
}

// All yields every key and value in slot order. The map must not be modified
// until the iteration ends.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return m.all()
}

func (m *Map[V]) Stats() Stats {
	return m.stats()
}

// String renders the map as {"key": value, ...} in slot order.
func (m *Map[V]) String() string {
	var b strings.Builder

	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%q: %v", k, v)
	}
	b.WriteByte('}')

	return b.String()
}
