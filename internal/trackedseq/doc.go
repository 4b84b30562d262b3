// Package trackedseq provides Sequence, a growable ordered container that counts its
// mutations.
//
// A Sequence behaves like a Go slice owned by a struct: every operation is forwarded to the
// underlying slice. In addition it carries a revision counter that is incremented once by every
// call that can mutate the contents, whether or not the call actually changed something. Code
// holding a reference to the sequence can therefore tell that *something* happened without
// diffing the elements:
//
//	seq := trackedseq.New[int]()
//	seq.Push(1)
//
//	if seq.Changed() { // true once, then false until the next mutation
//		rebuildView(seq.ReadView())
//	}
//
// # Mutable access gateway
//
// All mutating methods go through [Sequence.MutableView], which bumps the revision. The
// signal is conservative: it may report a change when none happened (Retain removing nothing,
// Reserve on a large enough buffer), it never misses one. Capacity operations (Reserve,
// ShrinkToFit, ...) go through the gateway too and therefore bump the revision.
//
// The only exception is [Unchecked.SetLen], reachable through [Sequence.Unchecked]: it changes
// the length without bumping. Callers using it must call [Sequence.Bump] themselves.
//
// # Concurrency
//
// A Sequence is not safe for concurrent mutation. [Sequence.Revision] and [Sequence.Bump] are
// atomic and can be called from any goroutine, but observing a new revision says nothing about
// the visibility of the corresponding writes to the elements: use a lock around both if needed.
//
// # Equality
//
// Equal, Compare, Hash, String and the JSON/YAML encodings only consider the elements; two
// sequences with the same elements are equal whatever their revisions.
package trackedseq
