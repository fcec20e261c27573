package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	assert.Equal(t, "event:abc123:teams", Channel("abc123"))
}

func TestMemoryBroker(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers events to subscribers of the same event", func(t *testing.T) {
		broker := NewMemoryBroker()
		defer broker.Close()

		events, cancel, err := broker.Subscribe(ctx, "ev1")
		require.NoError(t, err)
		defer cancel()

		published := TeamEvent{Type: TypeTeamCreated, EventID: "ev1", TeamID: "t1", TeamName: "Falcons"}
		require.NoError(t, broker.Publish(ctx, published))

		select {
		case got := <-events:
			assert.Equal(t, published, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	})

	t.Run("does not deliver across events", func(t *testing.T) {
		broker := NewMemoryBroker()
		defer broker.Close()

		events, cancel, err := broker.Subscribe(ctx, "ev1")
		require.NoError(t, err)
		defer cancel()

		require.NoError(t, broker.Publish(ctx, TeamEvent{Type: TypeTeamCreated, EventID: "ev2"}))

		select {
		case got := <-events:
			t.Fatalf("unexpected event: %+v", got)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("cancel closes the channel and stops delivery", func(t *testing.T) {
		broker := NewMemoryBroker()
		defer broker.Close()

		events, cancel, err := broker.Subscribe(ctx, "ev1")
		require.NoError(t, err)

		cancel()
		// A second cancel is a no-op, not a panic.
		cancel()

		_, open := <-events
		assert.False(t, open)

		assert.NoError(t, broker.Publish(ctx, TeamEvent{Type: TypeTeamCreated, EventID: "ev1"}))
	})

	t.Run("publish after close is a no-op", func(t *testing.T) {
		broker := NewMemoryBroker()

		events, _, err := broker.Subscribe(ctx, "ev1")
		require.NoError(t, err)

		broker.Close()

		_, open := <-events
		assert.False(t, open)

		assert.NoError(t, broker.Publish(ctx, TeamEvent{Type: TypeTeamCreated, EventID: "ev1"}))
	})

	t.Run("slow subscriber drops events instead of blocking", func(t *testing.T) {
		broker := NewMemoryBroker()
		defer broker.Close()

		_, cancel, err := broker.Subscribe(ctx, "ev1")
		require.NoError(t, err)
		defer cancel()

		// Buffer is 16; publishing more must not block the publisher.
		for i := 0; i < 40; i++ {
			require.NoError(t, broker.Publish(ctx, TeamEvent{Type: TypeTeamCreated, EventID: "ev1"}))
		}
	})
}
