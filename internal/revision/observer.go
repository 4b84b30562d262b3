package revision

// Observer is an edge-triggered observer of a Source: Changed reports whether the source's
// revision moved since the previous call (or since the observer's creation).
// Observers are independent from each other, several of them can watch the same source.
//
// thread unsafe.
type Observer struct {
	src  Source
	seen uint64
}

// NewObserver returns an observer that considers the current revision of src as seen.
func NewObserver(src Source) *Observer {
	return &Observer{src: src, seen: src.Revision()}
}

// Changed compares the current revision with the last seen one and records the current one.
func (o *Observer) Changed() bool {
	rev := o.src.Revision()
	changed := rev != o.seen
	o.seen = rev
	return changed
}

// Peek is the same as Changed but does not record the current revision.
func (o *Observer) Peek() bool {
	return o.src.Revision() != o.seen
}

// Sync records the current revision without reporting whether it moved.
func (o *Observer) Sync() {
	o.seen = o.src.Revision()
}

// Seen returns the last recorded revision.
func (o *Observer) Seen() uint64 {
	return o.seen
}

// Source returns the observed source.
func (o *Observer) Source() Source {
	return o.src
}
