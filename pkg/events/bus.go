// Package events carries cross-view notifications: when a final receipt is
// printed, order and table screens on every terminal must refresh. The bus is
// fire-and-forget; publishers never wait on or know about subscribers.
package events

import (
	"sync"
)

// Event names.
const (
	PrintCompleted = "printCompleted"
	RefreshOrders  = "refreshOrders"
	RefreshTables  = "refreshTables"
)

// Event is a broadcast notification.
type Event struct {
	Name    string                 `json:"name"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// PrintCompletedPayload builds the payload for a PrintCompleted event.
func PrintCompletedPayload(closeAllModals, refreshData bool) map[string]interface{} {
	return map[string]interface{}{
		"closeAllModals": closeAllModals,
		"refreshData":    refreshData,
	}
}

// Bus is an in-process broadcast bus. Slow subscribers drop events rather
// than block a publisher.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a subscriber and returns its channel plus a cancel
// function. The channel is closed on cancel or bus close.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, 16)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish broadcasts an event to all subscribers without blocking.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
			// subscriber is behind; drop rather than stall the publisher
		}
	}
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
