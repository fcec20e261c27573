package pubsub

import (
	"context"
	"sync"
)

// MemoryBroker is an in-process Publisher/Subscriber used by tests and
// single-node deployments without Redis.
type MemoryBroker struct {
	mu     sync.RWMutex
	subs   map[string][]chan TeamEvent
	closed bool
}

// NewMemoryBroker creates a new in-memory broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		subs: make(map[string][]chan TeamEvent),
	}
}

// Publish delivers the event to every current subscriber of the event's
// channel. Slow subscribers drop events rather than block the publisher.
func (b *MemoryBroker) Publish(ctx context.Context, event TeamEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for _, ch := range b.subs[Channel(event.EventID)] {
		select {
		case ch <- event:
		default:
		}
	}

	return nil
}

// Subscribe registers a new subscriber for the event's channel.
func (b *MemoryBroker) Subscribe(ctx context.Context, eventID string) (<-chan TeamEvent, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	channel := Channel(eventID)
	ch := make(chan TeamEvent, 16)
	b.subs[channel] = append(b.subs[channel], ch)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.subs[channel]
			for i, sub := range subs {
				if sub == ch {
					b.subs[channel] = append(subs[:i], subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
	}

	return ch, cancel, nil
}

// Close drops all subscribers.
func (b *MemoryBroker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for channel, subs := range b.subs {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.subs, channel)
	}
}

// Ensure MemoryBroker implements both interfaces
var (
	_ Publisher  = (*MemoryBroker)(nil)
	_ Subscriber = (*MemoryBroker)(nil)
)
