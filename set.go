package probemap

import "iter"

// Set is a set of strings backed by the same table as Map. It only stores
// keys, so it follows the same growth, deletion and iteration rules.
type Set struct {
	table[struct{}]
}

func NewSet(opts ...Option[struct{}]) (*Set, error) {
	var s Set
	if err := s.init(opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// Puts a key in the set.
func (s *Set) Add(key string) error {
	return s.set(key, struct{}{})
}

func (s *Set) Has(key string) bool {
	_, ok := s.get(key)
	return ok
}

// Removes a key from the set. Returns whether it was present.
func (s *Set) Delete(key string) bool {
	return s.delete(key)
}

func (s *Set) Len() int {
	return s.size
}

func (s *Set) Capacity() int {
	return s.capacity
}

// All yields every key in slot order. The set must not be modified until the
// iteration ends.
func (s *Set) All() iter.Seq[string] {
	return s.keys()
}

func (s *Set) Stats() Stats {
	return s.stats()
}
