package k2tree

// predecessorRecurse descends one node of extent (nr, nc) whose
// kr*kc-sized child group begins at base (0 for the root, where there
// is no real parent group) and visits every row with a non-null cell
// in column q, restricted to this node's row span. dp is the row
// offset accumulated by the ancestors already descended through.
// Column navigation is symmetric to forEachSuccessor's row walk but
// expressed recursively, per spec.md §4.3 and Design Notes §9's note
// that column-predecessor is allowed to stay recursive.
func (t *Tree[V]) predecessorRecurse(base, nr, nc, q, dp int, visit func(row int, value V) bool) bool {
	d := t.d
	subR, subC := subExtent(nr, nc, d.kr, d.kc)
	colSlot := q / subC
	q2 := q % subC

	for rowI := 0; rowI < d.kr; rowI++ {
		pos := base + rowI*d.kc + colSlot
		dpChild := dp + rowI*subR

		if pos >= t.t.Len() {
			v := t.leaves.Get(pos - t.t.Len())
			if v != t.null {
				if !visit(dpChild, v) {
					return false
				}
			}
			continue
		}
		if !t.t.Bit(pos) {
			continue
		}
		cBase := childBase(t.rank.Rank1(pos+1), d.kr, d.kc)
		if !t.predecessorRecurse(cBase, subR, subC, q2, dpChild, visit) {
			return false
		}
	}
	return true
}

func (t *Tree[V]) forEachPredecessor(j int, visit func(row int, value V) bool) {
	if t.leaves.Len() == 0 {
		return
	}
	t.predecessorRecurse(0, t.d.numRows, t.d.numCols, j, 0, visit)
}

// PredecessorPositions returns the ascending rows of column j's
// non-null cells.
func (t *Tree[V]) PredecessorPositions(j int) []int {
	var out []int
	t.forEachPredecessor(j, func(row int, _ V) bool {
		out = append(out, row)
		return true
	})
	return out
}

// PredecessorElements returns the values of column j's non-null
// cells, in the same ascending-row order as PredecessorPositions.
func (t *Tree[V]) PredecessorElements(j int) []V {
	var out []V
	t.forEachPredecessor(j, func(_ int, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// PredecessorValuedPositions returns (row, col, value) triples for
// column j's non-null cells, ascending by row.
func (t *Tree[V]) PredecessorValuedPositions(j int) []ValuedPosition[V] {
	var out []ValuedPosition[V]
	t.forEachPredecessor(j, func(row int, v V) bool {
		out = append(out, ValuedPosition[V]{Row: row, Col: j, Value: v})
		return true
	})
	return out
}
