package controls

// store is a dense/sparse arena keyed by generational handle. Values keep
// registration order in the dense slice until a removal swap-fills the gap;
// a stale handle (removed slot, or a recycled slot at a newer generation)
// simply fails to resolve.
type store[T any] struct {
	denseIDs []handleID
	dense    []T
	sparse   []int        // id-1 -> dense index, -1 when empty
	gens     []generation // id-1 -> generation of current or next occupant
	free     []handleID
}

func (s *store[T]) add(v T) uint64 {
	var id handleID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		id = handleID(len(s.sparse) + 1)
		s.sparse = append(s.sparse, -1)
		s.gens = append(s.gens, 0)
	}
	s.dense = append(s.dense, v)
	s.denseIDs = append(s.denseIDs, id)
	s.sparse[id-1] = len(s.dense) - 1
	return makeHandle(id, s.gens[id-1])
}

func (s *store[T]) index(h uint64) int {
	id, gen := handleParts(h)
	if id == 0 || int(id) > len(s.sparse) {
		return -1
	}
	if s.gens[id-1] != gen {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 {
		return -1
	}
	return idx
}

func (s *store[T]) get(h uint64) (T, bool) {
	var zero T
	idx := s.index(h)
	if idx < 0 {
		return zero, false
	}
	return s.dense[idx], true
}

func (s *store[T]) remove(h uint64) bool {
	idx := s.index(h)
	if idx < 0 {
		return false
	}
	id := s.denseIDs[idx]
	last := len(s.dense) - 1
	lastID := s.denseIDs[last]

	s.dense[idx] = s.dense[last]
	s.denseIDs[idx] = lastID
	s.sparse[lastID-1] = idx

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.denseIDs = s.denseIDs[:last]

	s.sparse[id-1] = -1
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *store[T]) len() int {
	return len(s.dense)
}

// values exposes the dense slice for the per-frame update pass.
func (s *store[T]) values() []T {
	return s.dense
}
