package memo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/inoxlang/trackedseq/internal/revision"
	"github.com/inoxlang/trackedseq/internal/utils"
	"github.com/rs/zerolog"
)

const (
	MEMO_LOG_SRC  = "memo"
	TABLE_LOG_SRC = "memo-table"
)

var (
	ErrNilComputeFunction = errors.New("nil compute function")
)

// Config is the configuration of a Memo or a Table, the zero value is valid.
type Config struct {
	// Name is added to log events, it helps telling memos apart.
	Name string

	// The zero value discards all events.
	Logger zerolog.Logger
}

func (c Config) logger(src string) zerolog.Logger {
	ctx := c.Logger.With().Str("src", src)
	if c.Name != "" {
		ctx = ctx.Str("name", c.Name)
	}
	return ctx.Logger()
}

// A Memo caches the result of a computation that depends on a fixed list of sources.
// Memo is thread safe, concurrent calls to Get never run the computation concurrently.
type Memo[V any] struct {
	lock sync.Mutex

	compute func() (V, error)
	sources []revision.Source

	//cache
	stamp revision.Stamp
	value V
	valid bool

	computations int
	logger       zerolog.Logger
}

func New[V any](compute func() (V, error), sources []revision.Source, config Config) *Memo[V] {
	if compute == nil {
		panic(ErrNilComputeFunction)
	}

	return &Memo[V]{
		compute: compute,
		sources: sources,
		logger:  config.logger(MEMO_LOG_SRC),
	}
}

// Get returns the cached value if no source was bumped since it was computed, otherwise it runs
// the computation. Errors (and panics) of the computation are returned and never cached.
func (m *Memo[V]) Get() (V, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.valid && !m.stamp.Differs(m.sources...) {
		return m.value, nil
	}

	//The stamp is captured before the computation: a bump that happens while computing
	//causes a recomputation at the next call.
	stamp := revision.Capture(m.sources...)

	value, err := m.run()
	m.computations++

	if err != nil {
		m.valid = false
		var zero V
		m.value = zero
		m.logger.Debug().Err(err).Int("computation", m.computations).Msg("computation failed")
		return zero, err
	}

	m.stamp = stamp
	m.value = value
	m.valid = true
	m.logger.Debug().Int("computation", m.computations).Uint64("revisions", stamp.Sum()).Msg("value recomputed")
	return value, nil
}

func (m *Memo[V]) run() (value V, finalErr error) {
	defer func() {
		if e := recover(); e != nil {
			finalErr = fmt.Errorf("computation panicked: %w", utils.ConvertPanicValueToError(e))
		}
	}()
	return m.compute()
}

// Stale reports whether the next call to Get will run the computation.
func (m *Memo[V]) Stale() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return !m.valid || m.stamp.Differs(m.sources...)
}

// Invalidate drops the cached value.
func (m *Memo[V]) Invalidate() {
	m.lock.Lock()
	defer m.lock.Unlock()

	var zero V
	m.value = zero
	m.valid = false
}

// Computations returns the number of times the computation was run, failed runs included.
func (m *Memo[V]) Computations() int {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.computations
}
