package probemap

// entry is a single occupied slot of the table.
type entry[V any] struct {
	key   string
	value V
}

func newEntry[V any](key string, value V) (*entry[V], error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	return &entry[V]{key: key, value: value}, nil
}

// matches compares by key only, values are ignored.
func (e *entry[V]) matches(key string) bool {
	return e.key == key
}
