package k2tree

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Mode selects the list-of-lists construction algorithm (spec.md
// §4.2, §6): ModeRecursive is Mode L0 (recursive descent over sorted
// cursors), ModeTempTree is Mode L1 (temporary arena tree, breadth-
// first flattened), ModeDynamic is Mode L2 (incremental splice-insert
// against a per-level dynamic-rank sidecar). The zero value is
// ModeRecursive. Any value outside this set falls back to
// ModeDynamic.
type Mode int

const (
	ModeRecursive Mode = iota
	ModeTempTree
	ModeDynamic
)

func resolveMode(mode Mode) Mode {
	switch mode {
	case ModeRecursive, ModeTempTree, ModeDynamic:
		return mode
	default:
		return ModeDynamic
	}
}

// NewFromMatrix builds a tree from a dense matrix (Mode M).
func NewFromMatrix[V comparable](m Matrix[V], kr, kc int, null V) (*Tree[V], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	return buildFromMatrix(m, null, kr, kc), nil
}

// NewFromMatrixWindow builds a tree from the (x, y, nr, nc) submatrix
// window of m. nr and nc must equal kr^h and kc^h for the height h
// they themselves imply, or construction fails with
// ErrWindowMismatch.
func NewFromMatrixWindow[V comparable](m Matrix[V], kr, kc, x, y, nr, nc int, null V) (*Tree[V], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	h, err := validateWindow(nr, nc, kr, kc)
	if err != nil {
		return nil, err
	}
	d := dims{kr: kr, kc: kc, h: h, numRows: nr, numCols: nc}
	shifted := shiftedMatrix[V]{m: m, x: x, y: y}
	t := buildFromMatrixWindow(shifted, null, d, newValueLeafStore[V]())
	log.Debug().Int("x", x).Int("y", y).Int("nr", nr).Int("nc", nc).
		Msg("k2tree: windowed matrix construction")
	return t, nil
}

// NewFromLists builds a tree from a list-of-lists input (Modes L0,
// L1, L2, chosen by mode) with the column extent inferred from the
// greatest column referenced by any row.
func NewFromLists[V comparable](rows []SortedRow[V], kr, kc int, mode Mode, null V) (*Tree[V], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	numCols := listsExtent(rows)
	d := computeDims(len(rows), numCols, kr, kc)
	return dispatchLists(rows, d, mode, null), nil
}

// NewFromListsWindow builds a tree from the (x, y, nr, nc) submatrix
// window of rows.
func NewFromListsWindow[V comparable](rows []SortedRow[V], kr, kc, x, y, nr, nc int, mode Mode, null V) (*Tree[V], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	h, err := validateWindow(nr, nc, kr, kc)
	if err != nil {
		return nil, err
	}
	d := dims{kr: kr, kc: kc, h: h, numRows: nr, numCols: nc}
	windowed := windowSortedRows(rows, x, y, nr, nc)
	t := dispatchLists(windowed, d, mode, null)
	log.Debug().Int("x", x).Int("y", y).Int("nr", nr).Int("nc", nc).
		Msg("k2tree: windowed list construction")
	return t, nil
}

func dispatchLists[V comparable](rows []SortedRow[V], d dims, mode Mode, null V) *Tree[V] {
	leaves := newValueLeafStore[V]()
	switch resolveMode(mode) {
	case ModeRecursive:
		return buildFromListsRecursiveWindow(rows, null, d, leaves)
	case ModeTempTree:
		return buildFromListsTreeWindow(rows, null, d, leaves)
	default:
		return buildFromListsDynamicWindow(rows, null, d, leaves)
	}
}

// NewFromPairs builds a tree from an unordered list of (row, col,
// value) pairs (Mode P), with the relation's extent inferred from the
// greatest row and column referenced by any pair.
func NewFromPairs[V comparable](pairs []Pair[V], kr, kc int, null V) (*Tree[V], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	numRows, numCols := pairsExtent(pairs)
	d := computeDims(numRows, numCols, kr, kc)
	return buildFromPairsWindow(pairs, null, d, newValueLeafStore[V]()), nil
}

// NewFromPairsWindow builds a tree from only the pairs whose (row,
// col) fall within the (x, y, nr, nc) submatrix window, shifted to
// that window's local coordinates. A non-trivial window (h > 1) with
// no pairs landing inside it fails with ErrEmptyPairsWindow rather
// than silently returning an empty tree, since that combination is
// more often a caller mistake than a genuinely empty relation.
func NewFromPairsWindow[V comparable](pairs []Pair[V], kr, kc, x, y, nr, nc int, null V) (*Tree[V], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	h, err := validateWindow(nr, nc, kr, kc)
	if err != nil {
		return nil, err
	}
	windowed := make([]Pair[V], 0, len(pairs))
	for _, p := range pairs {
		if p.Row < x || p.Row >= x+nr || p.Col < y || p.Col >= y+nc {
			continue
		}
		windowed = append(windowed, Pair[V]{Row: p.Row - x, Col: p.Col - y, Value: p.Value})
	}
	if len(windowed) == 0 && h > 1 {
		return nil, fmt.Errorf("%w: x=%d y=%d nr=%d nc=%d", ErrEmptyPairsWindow, x, y, nr, nc)
	}
	d := dims{kr: kr, kc: kc, h: h, numRows: nr, numCols: nc}
	return buildFromPairsWindow(windowed, null, d, newValueLeafStore[V]()), nil
}

// NewFromPairsSlice builds a tree from pairs[left:right], restricting
// the processed slice of the pairs array the way spec.md §6 allows
// for pair-mode construction, with the extent inferred only from that
// slice.
func NewFromPairsSlice[V comparable](pairs []Pair[V], left, right, kr, kc int, null V) (*Tree[V], error) {
	if left < 0 || right > len(pairs) || left > right {
		return nil, fmt.Errorf("%w: left=%d right=%d len=%d", ErrWindowMismatch, left, right, len(pairs))
	}
	return NewFromPairs(pairs[left:right], kr, kc, null)
}

func pairsExtent[V comparable](pairs []Pair[V]) (int, int) {
	numRows, numCols := 0, 0
	for _, p := range pairs {
		if p.Row+1 > numRows {
			numRows = p.Row + 1
		}
		if p.Col+1 > numCols {
			numCols = p.Col + 1
		}
	}
	return numRows, numCols
}

// NewBoolFromMatrix builds the boolean specialization from a dense
// presence matrix (spec.md §4.4): null is fixed to false and the
// leaf level is bit-packed rather than a []bool slice.
func NewBoolFromMatrix(m Matrix[bool], kr, kc int) (*Tree[bool], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	d := computeDims(m.Rows(), m.Cols(), kr, kc)
	return buildFromMatrixWindow(m, false, d, newBoolLeafStore()), nil
}

// NewBoolFromMatrixWindow is NewBoolFromMatrix's windowed sibling.
func NewBoolFromMatrixWindow(m Matrix[bool], kr, kc, x, y, nr, nc int) (*Tree[bool], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	h, err := validateWindow(nr, nc, kr, kc)
	if err != nil {
		return nil, err
	}
	d := dims{kr: kr, kc: kc, h: h, numRows: nr, numCols: nc}
	shifted := shiftedMatrix[bool]{m: m, x: x, y: y}
	return buildFromMatrixWindow(shifted, false, d, newBoolLeafStore()), nil
}

// NewBoolFromLists builds the boolean specialization from a
// list-of-lists input.
func NewBoolFromLists(rows []SortedRow[bool], kr, kc int, mode Mode) (*Tree[bool], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	numCols := listsExtent(rows)
	d := computeDims(len(rows), numCols, kr, kc)
	return dispatchBoolLists(rows, d, mode), nil
}

// NewBoolFromListsWindow is NewBoolFromLists's windowed sibling.
func NewBoolFromListsWindow(rows []SortedRow[bool], kr, kc, x, y, nr, nc int, mode Mode) (*Tree[bool], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	h, err := validateWindow(nr, nc, kr, kc)
	if err != nil {
		return nil, err
	}
	d := dims{kr: kr, kc: kc, h: h, numRows: nr, numCols: nc}
	windowed := windowSortedRows(rows, x, y, nr, nc)
	return dispatchBoolLists(windowed, d, mode), nil
}

func dispatchBoolLists(rows []SortedRow[bool], d dims, mode Mode) *Tree[bool] {
	leaves := newBoolLeafStore()
	switch resolveMode(mode) {
	case ModeRecursive:
		return buildFromListsRecursiveWindow(rows, false, d, leaves)
	case ModeTempTree:
		return buildFromListsTreeWindow(rows, false, d, leaves)
	default:
		return buildFromListsDynamicWindow(rows, false, d, leaves)
	}
}

// NewBoolFromPairs builds the boolean specialization from an
// unordered list of (row, col, value) pairs.
func NewBoolFromPairs(pairs []Pair[bool], kr, kc int) (*Tree[bool], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	numRows, numCols := pairsExtent(pairs)
	d := computeDims(numRows, numCols, kr, kc)
	return buildFromPairsWindow(pairs, false, d, newBoolLeafStore()), nil
}

// NewBoolFromPairsSlice is NewBoolFromPairs's (left, right)-restricted
// sibling.
func NewBoolFromPairsSlice(pairs []Pair[bool], left, right, kr, kc int) (*Tree[bool], error) {
	if left < 0 || right > len(pairs) || left > right {
		return nil, fmt.Errorf("%w: left=%d right=%d len=%d", ErrWindowMismatch, left, right, len(pairs))
	}
	return NewBoolFromPairs(pairs[left:right], kr, kc)
}
