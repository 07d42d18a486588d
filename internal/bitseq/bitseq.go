// Package bitseq implements the packed bit sequence and static
// rank-over-blocks index that the k2tree core treats as an external
// collaborator: it knows nothing about rows, columns or arities, only
// about bits and their prefix counts.
package bitseq

import "github.com/bits-and-blooms/bitset"

// Seq is an append-only packed bit sequence. It wraps bitset.BitSet,
// the one general-purpose bit-vector library in the dependency pool,
// and adds an explicit logical length since BitSet's own Len() only
// reflects the highest index ever touched.
type Seq struct {
	words *bitset.BitSet
	n     int
}

// NewSeq returns an empty sequence with room for sizeHint bits before
// the first reallocation.
func NewSeq(sizeHint int) *Seq {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Seq{words: bitset.New(uint(sizeHint))}
}

// Append adds a single bit to the end of the sequence.
func (s *Seq) Append(bit bool) {
	if bit {
		s.words.Set(uint(s.n))
	}
	s.n++
}

// AppendGroup appends a fixed-size run of bits, used by the builders
// to emit one kr*kc child-slot group at a time.
func (s *Seq) AppendGroup(bits []bool) {
	for _, b := range bits {
		s.Append(b)
	}
}

// Bit returns the bit at position i. Behavior is unspecified for
// i >= Len, matching the core's own "out-of-range queries are
// unchecked" stance.
func (s *Seq) Bit(i int) bool {
	return s.words.Test(uint(i))
}

// Set overwrites the bit at position i in place. Used by the boolean
// leaf level's SetNull.
func (s *Seq) Set(i int, bit bool) {
	s.words.SetTo(uint(i), bit)
}

// Len reports the number of bits appended so far.
func (s *Seq) Len() int {
	return s.n
}

// Count returns the number of set bits in [0, Len).
func (s *Seq) Count() int {
	return int(s.words.Count())
}

// Clone returns an independent copy of s.
func (s *Seq) Clone() *Seq {
	clone := NewSeq(s.n)
	for i := 0; i < s.n; i++ {
		clone.Append(s.Bit(i))
	}
	return clone
}
