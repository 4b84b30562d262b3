package watch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/bits-and-blooms/bitset"
	"github.com/inoxlang/trackedseq/internal/memds"
	"github.com/inoxlang/trackedseq/internal/revision"
	"github.com/inoxlang/trackedseq/internal/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	DEFAULT_POLL_INTERVAL = 100 * time.Millisecond
	POLLER_LOG_SRC        = "watch-poller"
)

var (
	ErrNilSource      = errors.New("nil source")
	ErrNilHandler     = errors.New("nil handler")
	ErrUnknownWatcher = errors.New("unknown watcher index")
)

type Config struct {
	// Interval between two polls in Run, defaults to DEFAULT_POLL_INTERVAL.
	Interval time.Duration

	// If Debounce is zero handlers are called at the end of each Poll, otherwise events
	// are buffered and delivered once no poll produced events during Debounce.
	Debounce time.Duration

	// The zero value discards all events.
	Logger zerolog.Logger
}

// A Poller detects mutations of revision sources by comparing their revision between polls.
// It never inspects the contents of the sources. Poller is thread safe.
type Poller struct {
	lock     sync.Mutex
	watched  []*watchedSource //nil slots are free
	free     []int
	handlers []Handler

	pending   *memds.TSArrayQueue[Event]
	debounced func(f func())

	interval time.Duration
	logger   zerolog.Logger
}

type watchedSource struct {
	name     string
	observer *revision.Observer
	removed  atomic.Bool
}

func NewPoller(config Config) *Poller {
	p := &Poller{
		interval: config.Interval,
		logger:   config.Logger.With().Str("src", POLLER_LOG_SRC).Logger(),
	}

	if p.interval <= 0 {
		p.interval = DEFAULT_POLL_INTERVAL
	}

	if config.Debounce > 0 {
		p.debounced = debounce.New(config.Debounce)
	}

	p.pending = memds.NewTSArrayQueueWithConfig(memds.TSArrayQueueConfig[Event]{
		AutoRemoveCondition: isEventOfRemovedSource,
	})

	return p
}

// isEventOfRemovedSource is the auto-remove condition of the pending queue, it is called with
// the queue locked and must not lock the poller.
func isEventOfRemovedSource(event Event) bool {
	return event.watcher.removed.Load()
}

// Watch starts watching src and returns the index of the source. The current revision of src
// is considered as seen: mutations made before the call are not reported. Indexes of unwatched
// sources are reused.
func (p *Poller) Watch(name string, src revision.Source) int {
	if src == nil {
		panic(ErrNilSource)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	w := &watchedSource{
		name:     name,
		observer: revision.NewObserver(src),
	}

	var index int
	if n := len(p.free); n > 0 {
		index = p.free[n-1]
		p.free = p.free[:n-1]
		p.watched[index] = w
	} else {
		index = len(p.watched)
		p.watched = append(p.watched, w)
	}

	p.logger.Debug().Str("source", name).Int("index", index).Msg("source watched")
	return index
}

// Unwatch stops watching the source at index, pending events of the source are dropped.
func (p *Poller) Unwatch(index int) error {
	p.lock.Lock()

	if index < 0 || index >= len(p.watched) || p.watched[index] == nil {
		p.lock.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownWatcher, index)
	}

	w := p.watched[index]
	w.removed.Store(true)
	w.observer = nil
	p.watched[index] = nil
	p.free = append(p.free, index)
	p.lock.Unlock()

	//Poll enqueues its events while holding the lock: the events of the source are either
	//already in the queue or were never created.
	p.pending.AutoRemove()
	p.logger.Debug().Str("source", w.name).Int("index", index).Msg("source unwatched")
	return nil
}

// Watched returns the number of sources being watched.
func (p *Poller) Watched() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.watched) - len(p.free)
}

// OnChange adds a handler, it receives all the events emitted after the call.
func (p *Poller) OnChange(handler Handler) {
	if handler == nil {
		panic(ErrNilHandler)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.handlers = append(p.handlers, handler)
}

// Poll compares the revision of each watched source with the one seen at the previous poll,
// it emits one event per source whose revision moved and returns the set of their indexes.
// If there is no debouncing the events are delivered before Poll returns and the handler
// errors are combined into the returned error.
func (p *Poller) Poll() (*bitset.BitSet, error) {
	p.lock.Lock()

	now := time.Now()
	changed := bitset.New(uint(len(p.watched)))
	var events []Event

	for i, w := range p.watched {
		if w == nil {
			continue
		}

		previous := w.observer.Seen()
		if !w.observer.Changed() {
			continue
		}

		changed.Set(uint(i))
		events = append(events, Event{
			ID:       ulid.Make(),
			Source:   w.name,
			Index:    i,
			Previous: previous,
			Revision: w.observer.Seen(),
			At:       now,
			watcher:  w,
		})
	}

	if len(events) == 0 {
		p.lock.Unlock()
		return changed, nil
	}

	p.pending.EnqueueAll(events...)
	p.lock.Unlock()

	p.logger.Debug().Int("changed", len(events)).Msg("sources changed")

	if p.debounced == nil {
		return changed, p.Flush()
	}

	p.debounced(func() {
		if err := p.Flush(); err != nil {
			p.logger.Err(err).Msg("failed to handle change events")
		}
	})
	return changed, nil
}

// Flush delivers the pending events to the handlers.
func (p *Poller) Flush() error {
	events := p.pending.DequeueAll()
	if len(events) == 0 {
		return nil
	}

	p.lock.Lock()
	handlers := append([]Handler(nil), p.handlers...)
	p.lock.Unlock()

	var errs []error

	for _, event := range events {
		for _, handler := range handlers {
			var handlerErr error
			panicErr := utils.Catch(func() {
				handlerErr = handler(event)
			})

			if panicErr != nil {
				errs = append(errs, fmt.Errorf("handler panicked on event %s (%s): %w", event.ID, event.Source, panicErr))
			} else if handlerErr != nil {
				errs = append(errs, fmt.Errorf("handler failed on event %s (%s): %w", event.ID, event.Source, handlerErr))
			}
		}
	}

	return utils.CombineErrors(errs...)
}

// Pending returns the number of events waiting to be delivered.
func (p *Poller) Pending() int {
	return p.pending.Size()
}

// Run polls the sources every interval until ctx is done, it then delivers the pending events
// and returns ctx.Err(). Handler errors are logged.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Debug().Dur("interval", p.interval).Msg("polling started")

	for {
		select {
		case <-ctx.Done():
			if err := p.Flush(); err != nil {
				p.logger.Err(err).Msg("failed to handle change events")
			}
			p.logger.Debug().Msg("polling stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := p.Poll(); err != nil {
				p.logger.Err(err).Msg("failed to handle change events")
			}
		}
	}
}
