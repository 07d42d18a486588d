package k2tree

import (
	"github.com/nszioual/k2trees/internal/arena"
	"github.com/nszioual/k2trees/internal/bitseq"
)

// insertListTree descends the temporary arena tree one level at a
// time, turning each node along the path internal and creating
// whichever children don't already exist, then stamps the value onto
// the node it reaches at depth h. It is a no-op for the null value,
// matching Modes M and L0's "a null input cell contributes nothing"
// stance.
func insertListTree[V comparable](tr *arena.Tree[V], d dims, null V, row, col int, value V) {
	if value == null {
		return
	}
	nr, nc := d.numRows, d.numCols
	p, q := row, col
	idx := tr.Root()
	for level := 0; level < d.h; level++ {
		subR, subC := subExtent(nr, nc, d.kr, d.kc)
		s := slot(p, q, nr, nc, d.kr, d.kc)
		tr.TurnInternal(idx, d.kr*d.kc)
		if tr.HasChild(idx, s) {
			idx = tr.Child(idx, s)
		} else {
			idx = tr.AddChild(idx, s, null)
		}
		p, q = p%subR, q%subC
		nr, nc = subR, subC
	}
	tr.SetLabel(idx, value)
}

// buildFromListsTreeWindow runs Mode L1 (spec.md §4.2): every (row,
// col, value) triple is inserted one at a time into a temporary
// pointer-free tree (Design Notes §9's arena of nodes), which is then
// flattened breadth-first into T and L. Pruning falls out for free:
// a subtree the arena never visited during insertion never gets a
// node, so it contributes nothing when flattened. The root is no
// exception: insertListTree turns it internal itself on the first
// real insert, so a wholly empty relation leaves it a leaf and both
// T and L stay empty.
func buildFromListsTreeWindow[V comparable](rows []SortedRow[V], null V, d dims, leaves leafStore[V]) *Tree[V] {
	tr := arena.New[V](null)
	for row, sr := range rows {
		for k, col := range sr.Cols {
			insertListTree(tr, d, null, row, col, sr.Values[k])
		}
	}

	groupSize := d.kr * d.kc

	if d.h == 1 {
		vals := make([]V, groupSize)
		for s := 0; s < groupSize; s++ {
			vals[s] = null
			if !tr.IsLeaf(tr.Root()) && tr.HasChild(tr.Root(), s) {
				vals[s] = tr.Label(tr.Child(tr.Root(), s))
			}
		}
		leaves.Append(vals)
		return newTree(d, null, bitseq.NewSeq(0), leaves)
	}

	if tr.IsLeaf(tr.Root()) {
		// Nothing was ever inserted: the relation is wholly empty, so
		// both T and L stay empty, same as every other pruned subtree.
		return newTree(d, null, bitseq.NewSeq(0), leaves)
	}

	t := bitseq.NewSeq(0)
	queue := []int32{tr.Root()}
	for level := 0; level < d.h-1; level++ {
		var next []int32
		for _, idx := range queue {
			bits := make([]bool, groupSize)
			for s := 0; s < groupSize; s++ {
				if tr.HasChild(idx, s) {
					bits[s] = true
					next = append(next, tr.Child(idx, s))
				}
			}
			t.AppendGroup(bits)
		}
		queue = next
	}
	for _, idx := range queue {
		vals := make([]V, groupSize)
		for s := 0; s < groupSize; s++ {
			vals[s] = null
			if tr.HasChild(idx, s) {
				vals[s] = tr.Label(tr.Child(idx, s))
			}
		}
		leaves.Append(vals)
	}
	return newTree(d, null, t, leaves)
}

func buildFromListsTree[V comparable](rows []SortedRow[V], numCols int, null V, kr, kc int) *Tree[V] {
	d := computeDims(len(rows), numCols, kr, kc)
	return buildFromListsTreeWindow(rows, null, d, newValueLeafStore[V]())
}
