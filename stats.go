package probemap

type Stats struct {
	Size              int
	Capacity          int
	GrowthBuffer      int
	EffectiveCapacity int
	Grows             int
	LongestProbe      int
}

func (t *table[V]) stats() Stats {
	return Stats{
		Size:              t.size,
		Capacity:          t.capacity,
		GrowthBuffer:      t.growthBuffer,
		EffectiveCapacity: t.capacity - t.growthBuffer,
		Grows:             t.grows,
		LongestProbe:      t.longestProbe(),
	}
}
