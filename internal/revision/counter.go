package revision

import (
	"sync/atomic"
)

// Source is implemented by values whose mutations are counted.
type Source interface {
	Revision() uint64
}

// Counter is a monotonic mutation counter. It can be bumped and loaded without holding any
// lock on the value it belongs to. A Counter establishes no ordering with other memory: seeing
// revision N does not imply seeing the writes that caused it.
//
// The zero value is a counter at revision 0. A Counter must not be copied after first use.
type Counter struct {
	value atomic.Uint64
}

// Bump increments the counter by one.
func (c *Counter) Bump() {
	c.value.Add(1)
}

// Load returns the current revision.
func (c *Counter) Load() uint64 {
	return c.value.Load()
}

// Revision is the same as Load, it makes *Counter a Source.
func (c *Counter) Revision() uint64 {
	return c.value.Load()
}
