package realtime

import (
	"sync"
	"testing"

	"github.com/linskybing/property-portal/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTicketSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe(1)
	b := h.Subscribe(2)
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	n := h.Publish(ticket.Event{Type: ticket.EventStatus, TicketID: 1, Status: ticket.StatusClosed})
	assert.Equal(t, 1, n)

	ev := <-a.C
	assert.Equal(t, ticket.StatusClosed, ev.Status)
	assert.Empty(t, b.C)
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(7)

	for i := 0; i < subscriberBuffer; i++ {
		require.Equal(t, 1, h.Publish(ticket.Event{Type: ticket.EventComment, TicketID: 7}))
	}
	assert.Equal(t, 0, h.Publish(ticket.Event{Type: ticket.EventComment, TicketID: 7}))
	assert.Equal(t, 0, h.Subscribers(7))

	drained := 0
	for range sub.C {
		drained++
	}
	assert.Equal(t, subscriberBuffer, drained)

	h.Unsubscribe(sub)
}

func TestHub_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		sub := h.Subscribe(3)
		go func() {
			defer wg.Done()
			h.Publish(ticket.Event{Type: ticket.EventStatus, TicketID: 3})
		}()
		go func() {
			defer wg.Done()
			h.Unsubscribe(sub)
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, h.Subscribers(3))
}
