package probemap

import (
	"errors"
	"fmt"
	"iter"
)

const (
	DefaultCapacity     = 127
	DefaultGrowthBuffer = 5
)

var ErrInvalidOption = errors.New("invalid option")

type table[V any] struct {
	slots []*entry[V]

	capacity     int
	growthBuffer int
	size         int
	grows        int

	// Pairs collected by WithPairs, inserted once the table is allocated.
	pending []Pair[V]
}

type Option[V any] func(t *table[V])

// Overrides the initial number of slots.
func WithCapacity[V any](capacity int) Option[V] {
	return func(t *table[V]) {
		t.capacity = capacity
	}
}

// Overrides the number of free slots below which the table doubles.
func WithGrowthBuffer[V any](buffer int) Option[V] {
	return func(t *table[V]) {
		t.growthBuffer = buffer
	}
}

func (t *table[V]) init(opts ...Option[V]) error {
	t.capacity = DefaultCapacity
	t.growthBuffer = DefaultGrowthBuffer

	for _, opt := range opts {
		opt(t)
	}

	// A buffer of at least one free slot is what guarantees probing terminates.
	if t.growthBuffer < 1 {
		return fmt.Errorf("%w: growth buffer %d must be positive", ErrInvalidOption, t.growthBuffer)
	}
	if t.capacity <= t.growthBuffer {
		return fmt.Errorf("%w: capacity %d must exceed growth buffer %d", ErrInvalidOption, t.capacity, t.growthBuffer)
	}

	t.slots = make([]*entry[V], t.capacity)

	pending := t.pending
	t.pending = nil

	for _, p := range pending {
		if err := t.set(p.Key, p.Value); err != nil {
			return err
		}
	}

	return nil
}

// locate returns the slot holding key, or the first empty slot of its probe
// chain if key is absent. The key must be valid.
func (t *table[V]) locate(key string) int {
	idx := slot(key, t.capacity)
	for t.slots[idx] != nil && !t.slots[idx].matches(key) {
		idx = t.next(idx)
	}

	return idx
}

// next is the linear probe step, wrapping at the end of the array.
func (t *table[V]) next(idx int) int {
	idx++
	if idx >= t.capacity {
		idx = 0
	}

	return idx
}

// find fails with ErrKeyNotFound for any key that is not stored, invalid
// keys included.
func (t *table[V]) find(key string) (*entry[V], error) {
	if err := ValidateKey(key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	}

	e := t.slots[t.locate(key)]
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return e, nil
}

func (t *table[V]) get(key string) (V, bool) {
	e, err := t.find(key)
	if err != nil {
		var zero V
		return zero, false
	}

	return e.value, true
}

func (t *table[V]) set(key string, value V) error {
	e, err := newEntry(key, value)
	if err != nil {
		return err
	}

	idx := t.locate(key)
	if t.slots[idx] == nil {
		t.size++
	}
	t.slots[idx] = e

	if t.size+t.growthBuffer >= t.capacity {
		t.grow()
	}

	return nil
}

// delete empties the key's slot and rehashes the survivors in place. Without
// tombstones this is the only way to keep probe chains that ran through the
// freed slot reachable.
func (t *table[V]) delete(key string) bool {
	if ValidateKey(key) != nil {
		return false
	}

	idx := t.locate(key)
	if t.slots[idx] == nil {
		return false
	}

	t.slots[idx] = nil
	t.size--
	t.rehash(t.capacity)

	return true
}

func (t *table[V]) grow() {
	t.rehash(t.capacity * 2)
	t.grows++
}

// rehash places every entry in a fresh array of the given capacity, in raw
// slot order, and swaps it in once it is fully populated.
func (t *table[V]) rehash(capacity int) {
	next := table[V]{
		slots:    make([]*entry[V], capacity),
		capacity: capacity,
	}

	for _, e := range t.slots {
		if e != nil {
			next.slots[next.locate(e.key)] = e
		}
	}

	t.slots = next.slots
	t.capacity = next.capacity
}

func (t *table[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range t.slots {
			if e == nil {
				continue
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (t *table[V]) keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range t.all() {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *table[V]) Reset() {
	clear(t.slots)
	t.size = 0
}

// longestProbe returns the largest distance between an entry's slot and the
// slot its key hashes to.
func (t *table[V]) longestProbe() int {
	var longest int
	for idx, e := range t.slots {
		if e == nil {
			continue
		}

		dist := idx - slot(e.key, t.capacity)
		if dist < 0 {
			dist += t.capacity
		}

		longest = max(longest, dist)
	}

	return longest
}
