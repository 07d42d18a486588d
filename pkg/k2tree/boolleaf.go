package k2tree

import "github.com/nszioual/k2trees/internal/bitseq"

// boolLeafStore is the boolean specialization's leafStore: the leaf
// level is a packed bit sequence rather than a []bool slice, per
// spec.md §4.4.
type boolLeafStore struct {
	seq *bitseq.Seq
}

func newBoolLeafStore() *boolLeafStore {
	return &boolLeafStore{seq: bitseq.NewSeq(0)}
}

func (s *boolLeafStore) Len() int                 { return s.seq.Len() }
func (s *boolLeafStore) Get(i int) bool           { return s.seq.Bit(i) }
func (s *boolLeafStore) SetNull(i int, null bool) { s.seq.Set(i, null) }
func (s *boolLeafStore) Append(values []bool) {
	s.seq.AppendGroup(values)
}
func (s *boolLeafStore) CountNonNull(null bool) int {
	if !null {
		return s.seq.Count()
	}
	return s.seq.Len() - s.seq.Count()
}

func (s *boolLeafStore) Clone() leafStore[bool] {
	return &boolLeafStore{seq: s.seq.Clone()}
}
