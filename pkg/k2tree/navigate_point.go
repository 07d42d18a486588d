package k2tree

// locate walks from the root to the cell (i, j) and returns the
// position of its value within L, and whether the walk actually
// reached a leaf (false means some ancestor subtree is pruned, so
// (i, j) is null). Behavior for i >= NumRows or j >= NumCols is
// unspecified per spec.md §6/§7.
func (t *Tree[V]) locate(i, j int) (int, bool) {
	if t.leaves.Len() == 0 {
		return 0, false
	}
	d := t.d
	nr, nc := d.numRows, d.numCols
	p, q := i, j

	pos := slot(p, q, nr, nc, d.kr, d.kc)
	subR, subC := subExtent(nr, nc, d.kr, d.kc)
	p, q = p%subR, q%subC
	nr, nc = subR, subC

	for {
		if pos >= t.t.Len() {
			return pos - t.t.Len(), true
		}
		if !t.t.Bit(pos) {
			return 0, false
		}
		base := childBase(t.rank.Rank1(pos+1), d.kr, d.kc)
		s := slot(p, q, nr, nc, d.kr, d.kc)
		pos = base + s

		subR, subC = subExtent(nr, nc, d.kr, d.kc)
		p, q = p%subR, q%subC
		nr, nc = subR, subC
	}
}

// IsNotNull reports whether cell (i, j) holds a non-null value.
func (t *Tree[V]) IsNotNull(i, j int) bool {
	pos, ok := t.locate(i, j)
	if !ok {
		return false
	}
	return t.leaves.Get(pos) != t.null
}

// GetElement returns the value at (i, j), or Null() if absent.
func (t *Tree[V]) GetElement(i, j int) V {
	pos, ok := t.locate(i, j)
	if !ok {
		return t.null
	}
	return t.leaves.Get(pos)
}
