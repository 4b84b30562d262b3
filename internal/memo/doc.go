// Package memo caches values derived from revision sources. A cached value is recomputed only
// when the revision of at least one of its sources moved since the previous computation,
// the contents of the sources are never inspected.
package memo
