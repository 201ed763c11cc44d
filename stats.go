package lru

// Stats holds cumulative counters of a cache. Clear does not reset them.
type Stats struct {
	Hits      uint64 // Get found the key
	Misses    uint64 // Get did not find the key
	Inserts   uint64 // Put stored a new key
	Updates   uint64 // Put replaced the value of a resident key
	Evictions uint64 // entries dropped to make room for an insert
	Removals  uint64 // entries dropped by Remove
}

// HitRatio returns Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Hits:      s.Hits + o.Hits,
		Misses:    s.Misses + o.Misses,
		Inserts:   s.Inserts + o.Inserts,
		Updates:   s.Updates + o.Updates,
		Evictions: s.Evictions + o.Evictions,
		Removals:  s.Removals + o.Removals,
	}
}
