package live

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/schema"
	"github.com/foodwatch/foodwatch-api/store"
)

const hubLogPrefix = "live-hub"

type listener struct {
	tables []string
	fn     func(schema.ChangeEvent)
}

// Hub fans the change feed out to per-table callbacks. Callbacks run on the
// hub goroutine and must not block.
type Hub struct {
	feed store.ChangeFeed

	sync.RWMutex
	nextID    uint64
	listeners map[uint64]listener
}

func NewHub(feed store.ChangeFeed) *Hub {
	return &Hub{
		feed:      feed,
		listeners: map[uint64]listener{},
	}
}

// Run dispatches change events until ctx is done or the feed closes.
func (h *Hub) Run(ctx context.Context) error {
	events, err := h.feed.Subscribe(ctx)
	if err != nil {
		return err
	}

	log.WithField("prefix", hubLogPrefix).Info("start dispatching change events")
	for ev := range events {
		h.dispatch(ev)
	}
	log.WithField("prefix", hubLogPrefix).Info("change feed closed")

	return nil
}

func (h *Hub) dispatch(ev schema.ChangeEvent) {
	h.RLock()
	targets := make([]func(schema.ChangeEvent), 0, len(h.listeners))
	for _, l := range h.listeners {
		if ev.Affects(l.tables) {
			targets = append(targets, l.fn)
		}
	}
	h.RUnlock()

	log.WithField("prefix", hubLogPrefix).Debugf("%s on %q notifies %d listeners", ev.Op, ev.Table, len(targets))
	for _, fn := range targets {
		fn(ev)
	}
}

// Subscribe registers fn for changes of the given tables. Resync events reach
// every listener. The returned function unregisters fn and is safe to call
// more than once.
func (h *Hub) Subscribe(tables []string, fn func(schema.ChangeEvent)) func() {
	h.Lock()
	h.nextID++
	id := h.nextID
	h.listeners[id] = listener{
		tables: append([]string(nil), tables...),
		fn:     fn,
	}
	h.Unlock()

	return func() {
		h.Lock()
		delete(h.listeners, id)
		h.Unlock()
	}
}

func (h *Hub) Listeners() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.listeners)
}
