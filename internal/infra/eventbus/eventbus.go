// Package eventbus is an in-memory publish/subscribe bus. The audit trail
// uses it to hand tool-invocation events from the MCP middleware to the
// SQLite writer without blocking the call path.
//
// Design:
//   - Buffered Go channel per topic (buffer=100).
//   - Publish is non-blocking: drops the event silently if the buffer is full.
//     A slow audit writer must never back-pressure tool calls.
//   - Subscribe returns a read-only channel; the caller owns the consumption loop.
//   - No persistence: durability is the subscriber's problem.
package eventbus

import "sync"

// Event is a single published message.
type Event struct {
	Topic   string
	Payload any
}

// Bus fans events out to per-topic subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

const defaultBufferSize = 100

// New returns an empty in-memory Bus.
func New() *Bus {
	return &Bus{
		subscribers: make(map[string][]chan Event),
	}
}

// Subscribe registers a new subscriber for topic and returns a read-only channel.
// The caller must keep consuming the channel or future events for it are dropped.
func (b *Bus) Subscribe(topic string) <-chan Event {
	ch := make(chan Event, defaultBufferSize)
	b.mu.Lock()
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	b.mu.Unlock()
	return ch
}

// Publish sends an Event to all subscribers of topic. Subscribers with a
// full buffer miss the event; Publish never blocks.
func (b *Bus) Publish(topic string, payload any) {
	evt := Event{Topic: topic, Payload: payload}
	b.mu.RLock()
	subs := b.subscribers[topic]
	b.mu.RUnlock()
	for _, ch := range subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
