package revision

import (
	"golang.org/x/exp/constraints"
)

// A Stamp holds the revisions of an ordered list of sources at capture time.
// Two stamps of the same sources are equal iff no source was bumped in between.
type Stamp []uint64

// Capture reads the revision of each source, in order.
func Capture(sources ...Source) Stamp {
	stamp := make(Stamp, len(sources))
	for i, src := range sources {
		stamp[i] = src.Revision()
	}
	return stamp
}

// Differs reports whether at least one of the sources has a revision that is not the one
// recorded in the stamp. The sources should be the ones passed to Capture, in the same order;
// a different count always differs.
func (s Stamp) Differs(sources ...Source) bool {
	if len(s) != len(sources) {
		return true
	}
	for i, src := range sources {
		if src.Revision() != s[i] {
			return true
		}
	}
	return false
}

// Moved returns the indexes of the sources whose revision is not the recorded one.
func (s Stamp) Moved(sources ...Source) []int {
	var moved []int
	for i, src := range sources {
		if i >= len(s) || src.Revision() != s[i] {
			moved = append(moved, i)
		}
	}
	return moved
}

// Equal reports whether the two stamps recorded the same revisions.
func (s Stamp) Equal(other Stamp) bool {
	if len(s) != len(other) {
		return false
	}
	for i, rev := range s {
		if other[i] != rev {
			return false
		}
	}
	return true
}

// Sum returns the sum of the recorded revisions. Since revisions never decrease, a larger sum
// for the same sources means more mutations.
func (s Stamp) Sum() uint64 {
	return sum(s)
}

func sum[N constraints.Unsigned](values []N) N {
	var total N
	for _, v := range values {
		total += v
	}
	return total
}
