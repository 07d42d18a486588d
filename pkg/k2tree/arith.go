package k2tree

// slot routes a cell at local coordinates (p, q) within a node of
// extent (nr, nc) to its child's slot index, per spec.md §4.1:
// slot(p, q, nr, nc) = floor(p / (nr/kr)) * kc + floor(q / (nc/kc)).
func slot(p, q, nr, nc, kr, kc int) int {
	return (p/(nr/kr))*kc + q/(nc/kc)
}

// subExtent returns the extent of a child one level below a node of
// extent (nr, nc).
func subExtent(nr, nc, kr, kc int) (int, int) {
	return nr / kr, nc / kc
}

// childBase returns the absolute bit/value position at which a
// child's kr*kc-sized group begins, given the absolute position z of
// the parent bit that was found set. rank1 is the number of 1-bits in
// T[0, z+1).
func childBase(rank1, kr, kc int) int {
	return rank1 * kr * kc
}
