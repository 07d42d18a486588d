package k2tree

import "testing"

// denseMatrix is the simplest Matrix[int] a test can construct: a
// plain [][]int wrapper.
type denseMatrix struct {
	rows [][]int
}

func (m denseMatrix) Rows() int { return len(m.rows) }
func (m denseMatrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}
func (m denseMatrix) At(i, j int) int { return m.rows[i][j] }

// sameEncoding reports whether two trees built from the same logical
// relation carry identical T and L, which is exactly the Mode
// equivalence property spec.md §8 requires of the five builders.
func sameEncoding[V comparable](a, b *Tree[V]) bool {
	if a.d != b.d || a.null != b.null {
		return false
	}
	if a.t.Len() != b.t.Len() || a.leaves.Len() != b.leaves.Len() {
		return false
	}
	for i := 0; i < a.t.Len(); i++ {
		if a.t.Bit(i) != b.t.Bit(i) {
			return false
		}
	}
	for i := 0; i < a.leaves.Len(); i++ {
		if a.leaves.Get(i) != b.leaves.Get(i) {
			return false
		}
	}
	return true
}

func testRelation() [][]int {
	return [][]int{
		{0, 0, 0, 5},
		{0, 3, 0, 0},
		{0, 0, 0, 0},
		{7, 0, 0, 9},
	}
}

func testRelationAsLists(rel [][]int, null int) []SortedRow[int] {
	rows := make([]SortedRow[int], len(rel))
	for i, row := range rel {
		var cols []int
		var vals []int
		for j, v := range row {
			if v != null {
				cols = append(cols, j)
				vals = append(vals, v)
			}
		}
		rows[i] = SortedRow[int]{Cols: cols, Values: vals}
	}
	return rows
}

func testRelationAsPairs(rel [][]int, null int) []Pair[int] {
	var pairs []Pair[int]
	for i, row := range rel {
		for j, v := range row {
			if v != null {
				pairs = append(pairs, Pair[int]{Row: i, Col: j, Value: v})
			}
		}
	}
	return pairs
}

func TestModeEquivalenceAcrossBuilders(t *testing.T) {
	rel := testRelation()
	const null = 0
	kr, kc := 2, 2

	m := buildFromMatrix[int](denseMatrix{rows: rel}, null, kr, kc)
	l0 := buildFromListsRecursive[int](testRelationAsLists(rel, null), 4, null, kr, kc)
	l1 := buildFromListsTree[int](testRelationAsLists(rel, null), 4, null, kr, kc)
	l2 := buildFromListsDynamic[int](testRelationAsLists(rel, null), 4, null, kr, kc)
	p := buildFromPairs[int](testRelationAsPairs(rel, null), 4, 4, null, kr, kc)

	trees := map[string]*Tree[int]{"L0": l0, "L1": l1, "L2": l2, "P": p}
	for name, other := range trees {
		if !sameEncoding(m, other) {
			t.Errorf("Mode %s produced a different encoding than Mode M:\nM:  %s\n%s: %s", name, m.String(), name, other.String())
		}
	}
}

func TestEmptyRelationPrunesEverything(t *testing.T) {
	rel := [][]int{
		{0, 0},
		{0, 0},
	}
	tr := buildFromMatrix[int](denseMatrix{rows: rel}, 0, 2, 2)
	if tr.CountElements() != 0 {
		t.Fatalf("CountElements() = %d, want 0", tr.CountElements())
	}
	if tr.t.Len() != 0 {
		t.Fatalf("T should stay empty for a wholly empty h=1 relation, len=%d", tr.t.Len())
	}
	if tr.leaves.Len() != 4 {
		t.Fatalf("L should be the dense group for h=1, len=%d", tr.leaves.Len())
	}
}

func TestEmptyRelationPrunesEverythingAboveLeafHeight(t *testing.T) {
	// Scenario F at h > 1 (8x8, kr=kc=2, h=3): the root group has a
	// parent-less presence bit of its own, and must be pruned exactly
	// like any other all-null subtree, across every builder mode.
	rel := make([][]int, 8)
	for i := range rel {
		rel[i] = make([]int, 8)
	}
	kr, kc := 2, 2

	m := buildFromMatrix[int](denseMatrix{rows: rel}, 0, kr, kc)
	l0 := buildFromListsRecursive[int](testRelationAsLists(rel, 0), 8, 0, kr, kc)
	l1 := buildFromListsTree[int](testRelationAsLists(rel, 0), 8, 0, kr, kc)
	l2 := buildFromListsDynamic[int](testRelationAsLists(rel, 0), 8, 0, kr, kc)
	p := buildFromPairs[int](testRelationAsPairs(rel, 0), 8, 8, 0, kr, kc)

	trees := map[string]*Tree[int]{"M": m, "L0": l0, "L1": l1, "L2": l2, "P": p}
	for name, tr := range trees {
		if tr.t.Len() != 0 {
			t.Errorf("Mode %s: T should stay empty for a wholly empty h>1 relation, len=%d", name, tr.t.Len())
		}
		if tr.leaves.Len() != 0 {
			t.Errorf("Mode %s: L should stay empty for a wholly empty h>1 relation, len=%d", name, tr.leaves.Len())
		}
		if tr.CountElements() != 0 {
			t.Errorf("Mode %s: CountElements() = %d, want 0", name, tr.CountElements())
		}
	}
}

func TestPairsLastWriteWinsOnDuplicates(t *testing.T) {
	// Scenario C: duplicate coordinates resolve to the value that
	// appeared latest in the pairs slice.
	pairs := []Pair[int]{
		{Row: 0, Col: 0, Value: 5},
		{Row: 0, Col: 0, Value: 7},
		{Row: 3, Col: 3, Value: 9},
	}
	tr := buildFromPairs[int](pairs, 4, 4, 0, 2, 2)
	if got := tr.GetElement(0, 0); got != 7 {
		t.Fatalf("GetElement(0,0) = %d, want 7", got)
	}
	if got := tr.GetElement(3, 3); got != 9 {
		t.Fatalf("GetElement(3,3) = %d, want 9", got)
	}
}

func TestBuildersPruneIdenticalAllNullSubtree(t *testing.T) {
	// Only the top-left quadrant of an 8x8 relation (kr=kc=2) has any
	// content: the other three top-level quadrants should contribute
	// no bits at all past the root group.
	rel := make([][]int, 8)
	for i := range rel {
		rel[i] = make([]int, 8)
	}
	rel[0][0] = 1
	rel[1][1] = 2

	tr := buildFromMatrix[int](denseMatrix{rows: rel}, 0, 2, 2)
	// Root group: only slot 0 (top-left quadrant) should be set.
	if !tr.t.Bit(0) {
		t.Fatal("root slot 0 (top-left quadrant) should be present")
	}
	for _, slot := range []int{1, 2, 3} {
		if tr.t.Bit(slot) {
			t.Errorf("root slot %d should be pruned (all null)", slot)
		}
	}
}

func TestListsModesAgreeWithNulledRows(t *testing.T) {
	// Rows with zero entries must still occupy a row index -- the
	// empty SortedRow for row 2 must not shift row 3's content up.
	rows := []SortedRow[int]{
		{Cols: []int{1}, Values: []int{4}},
		{},
		{},
		{Cols: []int{0, 3}, Values: []int{1, 2}},
	}
	kr, kc := 2, 2
	l0 := buildFromListsRecursive[int](rows, 4, 0, kr, kc)
	l1 := buildFromListsTree[int](rows, 4, 0, kr, kc)
	l2 := buildFromListsDynamic[int](rows, 4, 0, kr, kc)

	if !sameEncoding(l0, l1) || !sameEncoding(l0, l2) {
		t.Fatal("L0, L1 and L2 disagree on a relation with empty interior rows")
	}
	if got := l0.GetElement(3, 0); got != 1 {
		t.Fatalf("GetElement(3,0) = %d, want 1", got)
	}
	if got := l0.GetElement(0, 1); got != 4 {
		t.Fatalf("GetElement(0,1) = %d, want 4", got)
	}
}
