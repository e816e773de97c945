package store

import (
	"context"
	"errors"

	"github.com/foodwatch/foodwatch-api/schema"
)

const feedBufferSize = 64

// ErrFeedSubscribed is returned by a second Subscribe on the same feed
var ErrFeedSubscribed = errors.New("change feed already subscribed")

// ChangeFeed delivers table change notifications. The returned channel is
// closed when ctx is done or the feed is closed.
type ChangeFeed interface {
	Subscribe(ctx context.Context) (<-chan schema.ChangeEvent, error)
	Close() error
}

// emptyFeed never delivers anything. It is used when no notification driver
// is configured.
type emptyFeed struct{}

func NewEmptyFeed() ChangeFeed {
	return emptyFeed{}
}

func (emptyFeed) Subscribe(ctx context.Context) (<-chan schema.ChangeEvent, error) {
	ch := make(chan schema.ChangeEvent)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (emptyFeed) Close() error {
	return nil
}
