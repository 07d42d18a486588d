// Package k2tree implements a rectangular K²-tree: a compact static
// encoding of a sparse two-dimensional relation (a matrix with a
// distinguished null value) that answers point lookups, row
// successors, column predecessors, range enumeration and existence
// tests using only a pair of bit/value sequences plus a rank index.
//
// A Tree is built once by one of the New* constructors and is
// thereafter read-only except for SetNull, a local mutation that
// intentionally does not restructure the tree (see SetNull's doc
// comment).
package k2tree

import (
	"fmt"
	"strings"

	"github.com/nszioual/k2trees/internal/bitseq"
	"github.com/rs/zerolog/log"
)

// Position is a non-null cell's coordinates.
type Position struct {
	Row, Col int
}

// ValuedPosition is a non-null cell's coordinates and value.
type ValuedPosition[V comparable] struct {
	Row, Col int
	Value    V
}

// Relation is the uniform accessor every Tree implements: the
// non-null-oriented query surface plus the relation-vocabulary
// aliases spec.md §6 specifies as synonyms.
type Relation[V comparable] interface {
	NumRows() int
	NumCols() int
	Null() V

	IsNotNull(i, j int) bool
	GetElement(i, j int) V

	SuccessorPositions(i int) []int
	SuccessorElements(i int) []V
	SuccessorValuedPositions(i int) []ValuedPosition[V]

	PredecessorPositions(j int) []int
	PredecessorElements(j int) []V
	PredecessorValuedPositions(j int) []ValuedPosition[V]

	PositionsInRange(i1, i2, j1, j2 int) []Position
	ElementsInRange(i1, i2, j1, j2 int) []V
	ValuedPositionsInRange(i1, i2, j1, j2 int) []ValuedPosition[V]

	ContainsElement(i1, i2, j1, j2 int) bool
	CountElements() int
	FirstSuccessor(i int) int

	AllPositions() []Position
	AllElements() []V
	AllValuedPositions() []ValuedPosition[V]

	SetNull(i, j int)
	String() string
	Clone() Relation[V]

	// Relation-vocabulary aliases (spec.md §6).
	AreRelated(i, j int) bool
	Successors(i int) []int
	Predecessors(j int) []int
	Range(i1, i2, j1, j2 int) []Position
	ContainsLink(i1, i2, j1, j2 int) bool
	CountLinks() int
}

// Tree is the concrete rectangular K²-tree. There is no exported
// zero-value constructor: every Tree comes from a builder, since
// "never emit a bit/group for an all-null subtree" is a builder
// invariant rather than something a bare struct literal could
// satisfy.
type Tree[V comparable] struct {
	d      dims
	null   V
	t      *bitseq.Seq
	rank   *bitseq.Rank
	leaves leafStore[V]
}

func newTree[V comparable](d dims, null V, t *bitseq.Seq, leaves leafStore[V]) *Tree[V] {
	tree := &Tree[V]{d: d, null: null, t: t, leaves: leaves}
	tree.rank = bitseq.NewRank(t)
	log.Debug().
		Int("kr", d.kr).Int("kc", d.kc).Int("h", d.h).
		Int("numRows", d.numRows).Int("numCols", d.numCols).
		Int("tBits", t.Len()).Int("lLen", leaves.Len()).
		Msg("k2tree: construction finished")
	return tree
}

// NumRows returns the padded row extent kr^h.
func (t *Tree[V]) NumRows() int { return t.d.numRows }

// NumCols returns the padded column extent kc^h.
func (t *Tree[V]) NumCols() int { return t.d.numCols }

// Null returns the configured sentinel value.
func (t *Tree[V]) Null() V { return t.null }

// SetNull overwrites the leaf cell at (i, j) with the null value in
// place. It does not restructure the tree: a subtree that becomes
// entirely null this way keeps its ancestors' presence bits set to 1.
// In particular ContainsElement's whole-range shortcut (spec.md §4.3,
// §9) only ever inspects those presence bits, so it may keep
// reporting a since-cleared range as non-empty. This is documented
// source behavior, not a bug, and is pinned by Scenario E.
func (t *Tree[V]) SetNull(i, j int) {
	pos, inLeaves := t.locate(i, j)
	if !inLeaves {
		// The path never reached a leaf (some ancestor bit is 0),
		// meaning (i, j) is already null; nothing to clear.
		return
	}
	log.Debug().Int("row", i).Int("col", j).Msg("k2tree: setNull")
	t.leaves.SetNull(pos, t.null)
}

// String renders T and L, one line each, as space-separated
// bit/value groups of kr*kc, for debugging.
func (t *Tree[V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "k2tree(kr=%d, kc=%d, h=%d, numRows=%d, numCols=%d, null=%v)\n",
		t.d.kr, t.d.kc, t.d.h, t.d.numRows, t.d.numCols, t.null)
	group := t.d.kr * t.d.kc
	b.WriteString("T:")
	for i := 0; i < t.t.Len(); i++ {
		if i%group == 0 {
			b.WriteString(" ")
		}
		if t.t.Bit(i) {
			b.WriteString("1")
		} else {
			b.WriteString("0")
		}
	}
	b.WriteString("\nL:")
	for i := 0; i < t.leaves.Len(); i++ {
		if i%group == 0 {
			b.WriteString(" [")
		}
		fmt.Fprintf(&b, "%v", t.leaves.Get(i))
		if i%group == group-1 {
			b.WriteString("]")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// Clone returns an independent deep copy. The clone's rank index is
// rebuilt against its own copy of T, per the ownership note in
// spec.md §5: R holds a back-reference to T, so a copy must rebind
// rank to the copied sequence rather than share the original's.
func (t *Tree[V]) Clone() Relation[V] {
	tCopy := t.t.Clone()
	return &Tree[V]{
		d:      t.d,
		null:   t.null,
		t:      tCopy,
		rank:   bitseq.NewRank(tCopy),
		leaves: t.leaves.Clone(),
	}
}

// Relation-vocabulary aliases.
func (t *Tree[V]) AreRelated(i, j int) bool                     { return t.IsNotNull(i, j) }
func (t *Tree[V]) Successors(i int) []int                       { return t.SuccessorPositions(i) }
func (t *Tree[V]) Predecessors(j int) []int                      { return t.PredecessorPositions(j) }
func (t *Tree[V]) Range(i1, i2, j1, j2 int) []Position           { return t.PositionsInRange(i1, i2, j1, j2) }
func (t *Tree[V]) ContainsLink(i1, i2, j1, j2 int) bool          { return t.ContainsElement(i1, i2, j1, j2) }
func (t *Tree[V]) CountLinks() int                               { return t.CountElements() }
