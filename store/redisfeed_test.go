package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodwatch/foodwatch-api/schema"
)

func receive(t *testing.T, events <-chan schema.ChangeEvent) schema.ChangeEvent {
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
	}
	return schema.ChangeEvent{}
}

func TestRedisFeed(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := NewRedisFeed(client, "")
	events, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	_, err = feed.Subscribe(ctx)
	assert.Equal(t, ErrFeedSubscribed, err)

	// malformed payloads are dropped
	require.NoError(t, client.Publish(ctx, schema.ChangeChannel, "not json").Err())
	require.NoError(t, client.Publish(ctx, schema.ChangeChannel, `{"table":"users","op":"INSERT"}`).Err())

	require.NoError(t, feed.Publish(ctx, schema.ChangeEvent{Table: schema.CaseTable, Op: "INSERT"}))
	assert.Equal(t, schema.ChangeEvent{Table: "cases", Op: "INSERT"}, receive(t, events))

	cancel()
	for range events {
	}
	assert.NoError(t, feed.Close())
}
