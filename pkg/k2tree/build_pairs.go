package k2tree

import "github.com/nszioual/k2trees/internal/bitseq"

// Pair is one non-null cell for the pairs input shape Mode P builds
// from. Unlike SortedRow, Pair slices carry no ordering requirement.
type Pair[V comparable] struct {
	Row, Col int
	Value    V
}

// pairTask is one queued node during Mode P's breadth-first build: a
// bucket of pairs already known to fall within the node's extent,
// anchored at (rowOff, colOff).
type pairTask[V comparable] struct {
	pairs          []Pair[V]
	rowOff, colOff int
	nr, nc         int
}

// buildFromPairsWindow runs Mode P (spec.md §4.2): breadth-first,
// counting-sort bucketing of the pairs slice into kr*kc buckets per
// node at each level, queuing only the non-empty buckets for the next
// level. A node's presence bit is never set, and its child is never
// queued, for a bucket that ends up empty, so pruning is exact. The
// root task is no exception: when there are no non-null pairs at all
// and h > 1, it is never queued, so T and L both stay empty instead of
// the root contributing a lone all-false group.
func buildFromPairsWindow[V comparable](pairs []Pair[V], null V, d dims, leaves leafStore[V]) *Tree[V] {
	groupSize := d.kr * d.kc

	filtered := make([]Pair[V], 0, len(pairs))
	for _, pr := range pairs {
		if pr.Value != null {
			filtered = append(filtered, pr)
		}
	}

	t := bitseq.NewSeq(0)

	if d.h > 1 && len(filtered) == 0 {
		return newTree(d, null, t, leaves)
	}

	queue := []pairTask[V]{{pairs: filtered, nr: d.numRows, nc: d.numCols}}
	for level := 0; level < d.h; level++ {
		leafLevel := level == d.h-1
		var next []pairTask[V]

		for _, task := range queue {
			subR, subC := subExtent(task.nr, task.nc, d.kr, d.kc)
			buckets := make([][]Pair[V], groupSize)
			for _, pr := range task.pairs {
				rowI := (pr.Row - task.rowOff) / subR
				colJ := (pr.Col - task.colOff) / subC
				s := rowI*d.kc + colJ
				buckets[s] = append(buckets[s], pr)
			}

			if leafLevel {
				vals := make([]V, groupSize)
				for i := range vals {
					vals[i] = null
				}
				for s, bucket := range buckets {
					if len(bucket) > 0 {
						vals[s] = bucket[len(bucket)-1].Value // last write wins among duplicates
					}
				}
				leaves.Append(vals)
				continue
			}

			bits := make([]bool, groupSize)
			for s, bucket := range buckets {
				if len(bucket) == 0 {
					continue
				}
				bits[s] = true
				rowI, colJ := s/d.kc, s%d.kc
				next = append(next, pairTask[V]{
					pairs:  bucket,
					rowOff: task.rowOff + rowI*subR,
					colOff: task.colOff + colJ*subC,
					nr:     subR,
					nc:     subC,
				})
			}
			t.AppendGroup(bits)
		}
		queue = next
	}
	return newTree(d, null, t, leaves)
}

func buildFromPairs[V comparable](pairs []Pair[V], numRows, numCols int, null V, kr, kc int) *Tree[V] {
	d := computeDims(numRows, numCols, kr, kc)
	return buildFromPairsWindow(pairs, null, d, newValueLeafStore[V]())
}
