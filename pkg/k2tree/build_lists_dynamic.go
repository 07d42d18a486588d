package k2tree

import (
	"github.com/nszioual/k2trees/internal/bitseq"
	"github.com/nszioual/k2trees/internal/dynrank"
)

// insertLeafGroup splices a fresh kr*kc-sized group of null values
// into leafVals at pos, shifting every later group to the right. L
// has no need for rank queries during this build -- only positional
// insertion -- so a plain splice is enough; only T needs the dynamic
// rank sidecar.
func insertLeafGroup[V comparable](leafVals *[]V, pos, groupSize int, null V) {
	grown := make([]V, len(*leafVals)+groupSize)
	copy(grown, (*leafVals)[:pos])
	for i := 0; i < groupSize; i++ {
		grown[pos+i] = null
	}
	copy(grown[pos+groupSize:], (*leafVals)[pos:])
	*leafVals = grown
}

// insertListDynamic descends to (row, col) exactly as the static
// navigator would, except that each T level is its own dynrank.Splice
// that grows as new groups are discovered, and ranks are recomputed
// fresh against the *current* state of those splices on every call --
// which is what lets insertions arrive in any order and still land in
// the right place, since a later splice at an earlier rank correctly
// shifts everything already placed after it. The root group has no
// parent bit to gate it, so it is allocated lazily here, on the first
// real insert, rather than unconditionally before any row is seen --
// this function is only ever called with a non-null value, so a
// wholly empty relation never triggers the allocation at all.
func insertListDynamic[V comparable](levels []*dynrank.Splice, leafVals *[]V, d dims, null V, row, col int, value V) {
	groupSize := d.kr * d.kc
	nr, nc := d.numRows, d.numCols
	p, q := row, col
	base := 0

	if levels[0].Len() == 0 {
		levels[0].Insert(0, groupSize)
	}

	for level := 0; level < d.h; level++ {
		subR, subC := subExtent(nr, nc, d.kr, d.kc)
		s := slot(p, q, nr, nc, d.kr, d.kc)
		absPos := base + s

		if level == d.h-1 {
			(*leafVals)[absPos] = value
			return
		}

		lvl := levels[level]
		// Each level is its own splice, so a child's group index within
		// the next level is the number of 1-bits before absPos here.
		if lvl.Get(absPos) {
			base = lvl.Rank(absPos) * groupSize
		} else {
			priorRank := lvl.Rank(absPos)
			lvl.Set(absPos, true)
			childBase := priorRank * groupSize
			if level+1 < d.h-1 {
				levels[level+1].Insert(childBase, groupSize)
			} else {
				insertLeafGroup(leafVals, childBase, groupSize, null)
			}
			base = childBase
		}

		p, q = p%subR, q%subC
		nr, nc = subR, subC
	}
}

// buildFromListsDynamicWindow runs Mode L2 (spec.md §4.2): T is built
// up one splice-insert at a time as each (row, col, value) triple is
// descended to, using the naive dynamic-rank collaborator
// (internal/dynrank) the design explicitly allows in place of an
// eager-checkpoint one. When h == 1 there is no internal level for a
// dynamic rank to apply to at all, so this falls back to Mode L0's
// cursor walk.
func buildFromListsDynamicWindow[V comparable](rows []SortedRow[V], null V, d dims, leaves leafStore[V]) *Tree[V] {
	if d.h == 1 {
		return buildFromListsRecursiveWindow(rows, null, d, leaves)
	}

	levels := make([]*dynrank.Splice, d.h-1)
	for i := range levels {
		levels[i] = dynrank.New()
	}

	var leafVals []V
	for row, sr := range rows {
		for k, col := range sr.Cols {
			value := sr.Values[k]
			if value == null {
				continue
			}
			insertListDynamic(levels, &leafVals, d, null, row, col, value)
		}
	}

	t := bitseq.NewSeq(0)
	for _, lv := range levels {
		for i := 0; i < lv.Len(); i++ {
			t.Append(lv.Get(i))
		}
	}
	leaves.Append(leafVals)
	return newTree(d, null, t, leaves)
}

func buildFromListsDynamic[V comparable](rows []SortedRow[V], numCols int, null V, kr, kc int) *Tree[V] {
	d := computeDims(len(rows), numCols, kr, kc)
	return buildFromListsDynamicWindow(rows, null, d, newValueLeafStore[V]())
}
