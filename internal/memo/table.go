package memo

import (
	"hash/maphash"

	"github.com/inoxlang/trackedseq/internal/revision"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"
)

// A Table is a set of memos indexed by key, all the keys depend on the same sources.
// Entries are created on first access and live until they are forgotten or purged.
type Table[K comparable, V any] struct {
	entries cmap.ConcurrentMap[K, *Memo[V]]
	compute func(key K) (V, error)
	sources []revision.Source
	logger  zerolog.Logger
}

func NewTable[K comparable, V any](compute func(key K) (V, error), sources []revision.Source, config Config) *Table[K, V] {
	if compute == nil {
		panic(ErrNilComputeFunction)
	}

	seed := maphash.MakeSeed()

	return &Table[K, V]{
		entries: cmap.NewWithCustomShardingFunction[K, *Memo[V]](func(key K) uint32 {
			return uint32(maphash.Comparable(seed, key))
		}),
		compute: compute,
		sources: sources,
		logger:  config.logger(TABLE_LOG_SRC),
	}
}

// Get returns the value for key, computing it if the key has no valid cached value.
func (t *Table[K, V]) Get(key K) (V, error) {
	entry := t.entries.Upsert(key, nil, func(exist bool, valueInMap, _ *Memo[V]) *Memo[V] {
		if exist {
			return valueInMap
		}
		return t.newEntry(key)
	})

	return entry.Get()
}

func (t *Table[K, V]) newEntry(key K) *Memo[V] {
	return &Memo[V]{
		compute: func() (V, error) {
			return t.compute(key)
		},
		sources: t.sources,
		logger:  t.logger,
	}
}

// Stale reports whether the next call to Get(key) will run the computation, keys without an
// entry are stale.
func (t *Table[K, V]) Stale(key K) bool {
	entry, ok := t.entries.Get(key)
	return !ok || entry.Stale()
}

// Forget removes the entry of key.
func (t *Table[K, V]) Forget(key K) {
	t.entries.Remove(key)
}

// Len returns the number of entries, stale entries included.
func (t *Table[K, V]) Len() int {
	return t.entries.Count()
}

// Purge removes the entries whose value is stale and returns the number of removed entries.
func (t *Table[K, V]) Purge() int {
	removed := 0

	for _, key := range t.entries.Keys() {
		ok := t.entries.RemoveCb(key, func(_ K, entry *Memo[V], exists bool) bool {
			return exists && entry.Stale()
		})
		if ok {
			removed++
		}
	}

	if removed > 0 {
		t.logger.Debug().Int("removed", removed).Int("remaining", t.entries.Count()).Msg("stale entries purged")
	}
	return removed
}
