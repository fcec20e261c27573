package pubsub

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisBroker implements Publisher and Subscriber on Redis pub/sub.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker creates a broker on an existing Redis client.
func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

// Publish sends the event to every subscriber of the event's channel.
func (b *RedisBroker) Publish(ctx context.Context, event TeamEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, Channel(event.EventID), payload).Err()
}

// Subscribe starts a Redis subscription on the event's channel and decodes
// messages onto the returned channel until cancel is called or ctx ends.
func (b *RedisBroker) Subscribe(ctx context.Context, eventID string) (<-chan TeamEvent, func(), error) {
	sub := b.client.Subscribe(ctx, Channel(eventID))

	// Force the subscription to be established before returning.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	events := make(chan TeamEvent, 16)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event TeamEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("pubsub: dropping malformed message on %s: %v", msg.Channel, err)
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		_ = sub.Close()
	}

	return events, cancel, nil
}

// Ensure RedisBroker implements both interfaces
var (
	_ Publisher  = (*RedisBroker)(nil)
	_ Subscriber = (*RedisBroker)(nil)
)
