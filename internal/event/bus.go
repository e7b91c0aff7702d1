package event

import (
	"errors"
	"sync"
	"time"
)

// ErrNilHandler indicates a subscription was attempted with a nil
// handler.
var ErrNilHandler = errors.New("nil event handler")

// Event is a published notification.
type Event struct {
	// Topic is the event type.
	Topic Topic

	// Payload carries event-specific data (e.g. a buffer ID or a
	// frame ID). May be nil for coarse notifications.
	Payload any

	// Timestamp is when the event was published.
	Timestamp time.Time
}

// Handler processes a delivered event.
type Handler func(Event)

// Subscription identifies an active subscription for later removal.
type Subscription struct {
	id      uint64
	pattern Topic
}

// Pattern returns the topic pattern the subscription was made with.
func (s Subscription) Pattern() Topic {
	return s.pattern
}

// Stats reports bus activity counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerPanics uint64
}

// Bus is a synchronous publish/subscribe bus.
//
// The module is host-callback driven, so delivery happens on the
// publisher's goroutine; the mutex only guards subscription bookkeeping
// against host timers firing off the main callback.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
	stats  Stats
}

type subscription struct {
	id      uint64
	pattern Topic
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for topics matching the pattern.
func (b *Bus) Subscribe(pattern Topic, h Handler) (Subscription, error) {
	if h == nil {
		return Subscription{}, ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscription{
		id:      b.nextID,
		pattern: pattern,
		handler: h,
	})
	return Subscription{id: b.nextID, pattern: pattern}, nil
}

// Unsubscribe removes a subscription. Unknown subscriptions are
// ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event synchronously to all matching handlers in
// subscription order.
func (b *Bus) Publish(topic Topic, payload any) {
	ev := Event{
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	b.mu.RLock()
	matching := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if s.pattern.Matches(topic) {
			matching = append(matching, s.handler)
		}
	}
	b.mu.RUnlock()

	b.mu.Lock()
	b.stats.Published++
	b.mu.Unlock()

	for _, h := range matching {
		b.deliver(h, ev)
	}
}

// deliver runs one handler with panic recovery.
func (b *Bus) deliver(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.mu.Lock()
			b.stats.HandlerPanics++
			b.mu.Unlock()
		}
	}()

	h(ev)

	b.mu.Lock()
	b.stats.Delivered++
	b.mu.Unlock()
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stats
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
