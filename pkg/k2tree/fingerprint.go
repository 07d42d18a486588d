package k2tree

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Fingerprint is a cheap content-identity pair for a tree: a digest
// of T and a digest of L, computed with two different hash families
// so the pair also works as a sanity check against a digest
// collision in either one alone. Tests use it to check that Mode M
// and Mode P agree on the same relation, that Clone preserves
// content, and that SetNull changes it.
type Fingerprint struct {
	TDigest uint64
	LDigest uint64
}

// Fingerprint computes t's content fingerprint: xxhash/v2 over T
// packed eight bits to a byte, xxh3 over L's values rendered through
// their default formatting (the only representation available for an
// arbitrary comparable type parameter). It is stable under Clone,
// since both only depend on bit/value content, and changes after a
// SetNull call that actually flips a retained leaf value.
func (t *Tree[V]) Fingerprint() Fingerprint {
	th := xxhash.New()
	var word byte
	for i := 0; i < t.t.Len(); i++ {
		if t.t.Bit(i) {
			word |= 1 << (uint(i) % 8)
		}
		if i%8 == 7 || i == t.t.Len()-1 {
			th.Write([]byte{word})
			word = 0
		}
	}

	lh := xxh3.New()
	for i := 0; i < t.leaves.Len(); i++ {
		fmt.Fprintf(lh, "%v|", t.leaves.Get(i))
	}

	return Fingerprint{TDigest: th.Sum64(), LDigest: lh.Sum64()}
}
