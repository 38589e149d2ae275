package metrics

// disjointSet is a union-find node with path compression and union by rank.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

func newDisjointSet() *disjointSet {
	s := &disjointSet{}
	s.parent = s
	return s
}

func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}
	return s.parent
}

func (s *disjointSet) union(other *disjointSet) {
	x := s.findSet()
	y := other.findSet()
	if x == y {
		return
	}
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}
