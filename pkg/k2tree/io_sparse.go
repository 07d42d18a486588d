package k2tree

import "sort"

// FromSparseRows converts a sparse row index (row -> column -> value)
// -- the shape most in-memory callers already hold -- into the
// sorted-column-list input Modes L0, L1 and L2 require, sorting each
// row's columns once up front rather than asking every builder to
// discover they need a sort. Rows absent from sparse, or out of
// [0, numRows), become an empty SortedRow, so the result always has
// exactly numRows entries addressable by row index.
func FromSparseRows[V comparable](sparse map[int]map[int]V, numRows int) []SortedRow[V] {
	out := make([]SortedRow[V], numRows)
	for row, cols := range sparse {
		if row < 0 || row >= numRows {
			continue
		}
		keys := make([]int, 0, len(cols))
		for c := range cols {
			keys = append(keys, c)
		}
		sort.Ints(keys)
		vals := make([]V, len(keys))
		for i, c := range keys {
			vals[i] = cols[c]
		}
		out[row] = SortedRow[V]{Cols: keys, Values: vals}
	}
	return out
}
