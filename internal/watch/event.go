package watch

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// An Event is emitted when the revision of a watched source moved between two polls.
// It does not say what changed, only that the source was mutated at least once.
type Event struct {
	ID ulid.ULID

	Source string //name of the source
	Index  int    //index returned by Watch

	Previous uint64
	Revision uint64

	At time.Time //time of the poll

	watcher *watchedSource
}

// Mutations returns the number of mutating calls made on the source between the two polls.
func (e Event) Mutations() uint64 {
	return e.Revision - e.Previous
}

// Handler is called for each event, returned errors do not stop the delivery to other handlers.
type Handler func(event Event) error
