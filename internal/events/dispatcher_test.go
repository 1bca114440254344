package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventTicketClassified, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.RequestID)
		return errors.New("first failed")
	})
	d.Subscribe(EventTicketClassified, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.RequestID)
		return nil
	})
	d.Subscribe(EventType("other"), func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketClassified, RequestID: "r1"})
	assert.EqualError(t, err, "ticket_classified handler 0: first failed")
	assert.Equal(t, []string{"first:r1", "second:r1"}, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketClassified}))
}

func TestPublishRecoversHandlerPanic(t *testing.T) {
	d := NewInMemoryDispatcher()
	sentinel := errors.New("audit down")
	delivered := false
	d.Subscribe(EventTicketClassified, func(context.Context, Event) error {
		panic("nil pool")
	})
	d.Subscribe(EventTicketClassified, func(context.Context, Event) error {
		return sentinel
	})
	d.Subscribe(EventTicketClassified, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketClassified})
	assert.ErrorContains(t, err, "handler 0: panic: nil pool")
	assert.ErrorIs(t, err, sentinel)
	assert.True(t, delivered)
}
