package k2tree

// rowItem is one queued column-stripe during a row-successor walk:
// dq is the absolute column offset of the stripe and pos its
// absolute position in the T-then-L address space.
type rowItem struct {
	dq, pos int
}

// forEachSuccessor walks row i breadth-first across its kc-wide
// column stripes (spec.md §4.3's row-successor algorithm) and calls
// visit for every non-null cell in ascending column order, stopping
// early if visit returns false.
func (t *Tree[V]) forEachSuccessor(i int, visit func(col int, value V) bool) {
	if t.leaves.Len() == 0 {
		return
	}
	d := t.d

	relP := i
	nr, nc := d.numRows, d.numCols
	subR, subC := subExtent(nr, nc, d.kr, d.kc)
	rowSlot := relP / subR

	queue := make([]rowItem, 0, d.kc)
	for colJ := 0; colJ < d.kc; colJ++ {
		queue = append(queue, rowItem{dq: colJ * subC, pos: rowSlot*d.kc + colJ})
	}
	relP %= subR
	nr, nc = subR, subC

	for len(queue) > 0 {
		var haveSub bool
		var nextSubR, nextSubC, nextRowSlot int
		next := queue[:0:0]

		for _, it := range queue {
			if it.pos >= t.t.Len() {
				v := t.leaves.Get(it.pos - t.t.Len())
				if v != t.null {
					if !visit(it.dq, v) {
						return
					}
				}
				continue
			}
			if !t.t.Bit(it.pos) {
				continue
			}
			if !haveSub {
				nextSubR, nextSubC = subExtent(nr, nc, d.kr, d.kc)
				nextRowSlot = relP / nextSubR
				haveSub = true
			}
			base := childBase(t.rank.Rank1(it.pos+1), d.kr, d.kc)
			for colJ := 0; colJ < d.kc; colJ++ {
				next = append(next, rowItem{
					dq:  it.dq + colJ*nextSubC,
					pos: base + nextRowSlot*d.kc + colJ,
				})
			}
		}

		if haveSub {
			relP %= nextSubR
			nr, nc = nextSubR, nextSubC
		}
		queue = next
	}
}

// SuccessorPositions returns the ascending columns of row i's
// non-null cells.
func (t *Tree[V]) SuccessorPositions(i int) []int {
	var out []int
	t.forEachSuccessor(i, func(col int, _ V) bool {
		out = append(out, col)
		return true
	})
	return out
}

// SuccessorElements returns the values at row i's non-null cells, in
// the same ascending-column order as SuccessorPositions.
func (t *Tree[V]) SuccessorElements(i int) []V {
	var out []V
	t.forEachSuccessor(i, func(_ int, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// SuccessorValuedPositions returns (row, col, value) triples for row
// i's non-null cells, ascending by column.
func (t *Tree[V]) SuccessorValuedPositions(i int) []ValuedPosition[V] {
	var out []ValuedPosition[V]
	t.forEachSuccessor(i, func(col int, v V) bool {
		out = append(out, ValuedPosition[V]{Row: i, Col: col, Value: v})
		return true
	})
	return out
}

// firstSuccessorFrame is one stack frame of the iterative
// leftmost-first DFS FirstSuccessor performs.
type firstSuccessorFrame struct {
	p, dq, base, rowSlot, subR, subC, j int
}

func (t *Tree[V]) newFirstSuccessorFrame(nr, nc, p, dq, base int) firstSuccessorFrame {
	subR, subC := subExtent(nr, nc, t.d.kr, t.d.kc)
	return firstSuccessorFrame{p: p, dq: dq, base: base, rowSlot: p / subR, subR: subR, subC: subC}
}

// FirstSuccessor returns the least column j with a non-null (i, j),
// or NumCols() if row i has no non-null cells. It is an iterative,
// left-to-right DFS over the row's kc-wide stripes using an explicit
// stack, per spec.md §4.3.
func (t *Tree[V]) FirstSuccessor(i int) int {
	d := t.d
	if t.leaves.Len() == 0 {
		return d.numCols
	}
	stack := []firstSuccessorFrame{t.newFirstSuccessorFrame(d.numRows, d.numCols, i, 0, 0)}

	for len(stack) > 0 {
		idx := len(stack) - 1
		f := stack[idx]
		if f.j == d.kc {
			stack = stack[:idx]
			continue
		}

		pos := f.base + f.rowSlot*d.kc + f.j
		dq := f.dq + f.j*f.subC

		switch {
		case pos >= t.t.Len():
			if t.leaves.Get(pos-t.t.Len()) != t.null {
				return dq
			}
			stack[idx].j++
		case t.t.Bit(pos):
			base := childBase(t.rank.Rank1(pos+1), d.kr, d.kc)
			stack[idx].j++
			stack = append(stack, t.newFirstSuccessorFrame(f.subR, f.subC, f.p%f.subR, dq, base))
		default:
			stack[idx].j++
		}
	}
	return d.numCols
}
