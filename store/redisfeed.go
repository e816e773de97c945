package store

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/schema"
)

const redisFeedLogPrefix = "redis-feed"

// RedisFeed receives change events through Redis pub/sub. Writers that do not
// go through PostgreSQL triggers announce their changes with Publish.
type RedisFeed struct {
	client  *redis.Client
	channel string

	sync.Mutex
	pubsub *redis.PubSub
}

func NewRedisFeed(client *redis.Client, channel string) *RedisFeed {
	if channel == "" {
		channel = schema.ChangeChannel
	}

	return &RedisFeed{
		client:  client,
		channel: channel,
	}
}

func (f *RedisFeed) Subscribe(ctx context.Context) (<-chan schema.ChangeEvent, error) {
	f.Lock()
	defer f.Unlock()

	if f.pubsub != nil {
		return nil, ErrFeedSubscribed
	}

	pubsub := f.client.Subscribe(ctx, f.channel)
	// wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}
	f.pubsub = pubsub

	log.WithField("prefix", redisFeedLogPrefix).Infof("subscribe channel %s", f.channel)

	events := make(chan schema.ChangeEvent, feedBufferSize)
	go func() {
		defer close(events)

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				ev, err := schema.ParseChangeEvent(msg.Payload)
				if err != nil {
					log.WithField("prefix", redisFeedLogPrefix).WithError(err).Warnf("drop message: %s", msg.Payload)
					continue
				}

				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

// Publish announces a change to every subscriber of the channel
func (f *RedisFeed) Publish(ctx context.Context, ev schema.ChangeEvent) error {
	return f.client.Publish(ctx, f.channel, ev.Payload()).Err()
}

func (f *RedisFeed) Close() error {
	f.Lock()
	defer f.Unlock()

	if f.pubsub == nil {
		return nil
	}
	return f.pubsub.Close()
}
