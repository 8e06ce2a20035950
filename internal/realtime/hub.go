// Package realtime fans ticket events out to websocket subscribers.
package realtime

import (
	"sync"

	"github.com/linskybing/property-portal/internal/domain/ticket"
)

const subscriberBuffer = 16

// Hub keeps one subscriber set per ticket. Publishing never blocks: a
// subscriber whose buffer is full is dropped and its channel closed.
type Hub struct {
	mu   sync.Mutex
	subs map[uint]map[*Subscription]struct{}
}

type Subscription struct {
	TicketID uint
	C        <-chan ticket.Event

	ch     chan ticket.Event
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint]map[*Subscription]struct{})}
}

func (h *Hub) Subscribe(ticketID uint) *Subscription {
	ch := make(chan ticket.Event, subscriberBuffer)
	sub := &Subscription{TicketID: ticketID, C: ch, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[ticketID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[ticketID] = set
	}
	set[sub] = struct{}{}
	return sub
}

// Unsubscribe removes sub and closes its channel. Safe to call twice.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *Subscription) {
	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.ch)
	if set, ok := h.subs[sub.TicketID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, sub.TicketID)
		}
	}
}

// Publish delivers ev to every subscriber of its ticket and returns how many
// received it.
func (h *Hub) Publish(ev ticket.Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for sub := range h.subs[ev.TicketID] {
		select {
		case sub.ch <- ev:
			delivered++
		default:
			h.removeLocked(sub)
		}
	}
	return delivered
}

// Subscribers returns the number of live subscribers for ticketID.
func (h *Hub) Subscribers(ticketID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[ticketID])
}
