// Package revision provides the mutation counters shared by tracked data structures and the
// observers that poll them.
//
// A [Counter] is a hint: it says that something may have changed, never what changed. Any
// value exposing its counter through [Source] can be watched by an [Observer] (one snapshot per
// observer) or captured together with other sources in a [Stamp].
package revision
