package store

import (
	"context"
	"sync"
	"time"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/schema"
)

const (
	pqFeedLogPrefix = "pq-feed"

	pqMinReconnect = 10 * time.Second
	pqMaxReconnect = time.Minute
	pqPingInterval = 90 * time.Second
)

// PQFeed receives change events through PostgreSQL LISTEN/NOTIFY
type PQFeed struct {
	conn    string
	channel string

	sync.Mutex
	listener *pq.Listener
}

func NewPQFeed(conn, channel string) *PQFeed {
	if channel == "" {
		channel = schema.ChangeChannel
	}

	return &PQFeed{
		conn:    conn,
		channel: channel,
	}
}

func (f *PQFeed) Subscribe(ctx context.Context) (<-chan schema.ChangeEvent, error) {
	f.Lock()
	defer f.Unlock()

	if f.listener != nil {
		return nil, ErrFeedSubscribed
	}

	listener := pq.NewListener(f.conn, pqMinReconnect, pqMaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.WithField("prefix", pqFeedLogPrefix).WithError(err).Warnf("listener event %d", ev)
		}
	})

	if err := listener.Listen(f.channel); err != nil {
		listener.Close()
		return nil, err
	}
	f.listener = listener

	log.WithField("prefix", pqFeedLogPrefix).Infof("listen on channel %s", f.channel)

	events := make(chan schema.ChangeEvent, feedBufferSize)
	go f.forward(ctx, listener, events)

	return events, nil
}

func (f *PQFeed) forward(ctx context.Context, listener *pq.Listener, events chan<- schema.ChangeEvent) {
	defer close(events)

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-listener.Notify:
			if !ok {
				return
			}

			ev, valid := decodeNotification(n)
			if !valid {
				continue
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		case <-time.After(pqPingInterval):
			go func() {
				if err := listener.Ping(); err != nil {
					log.WithField("prefix", pqFeedLogPrefix).WithError(err).Warn("listener ping")
				}
			}()
		}
	}
}

// decodeNotification turns a notification into a change event. A nil
// notification follows a reconnect, when notifications may have been lost,
// and becomes a resync event.
func decodeNotification(n *pq.Notification) (schema.ChangeEvent, bool) {
	if n == nil {
		return schema.ChangeEvent{}, true
	}

	ev, err := schema.ParseChangeEvent(n.Extra)
	if err != nil {
		log.WithField("prefix", pqFeedLogPrefix).WithError(err).Warnf("drop notification: %s", n.Extra)
		return schema.ChangeEvent{}, false
	}
	return ev, true
}

func (f *PQFeed) Close() error {
	f.Lock()
	defer f.Unlock()

	if f.listener == nil {
		return nil
	}
	return f.listener.Close()
}
