package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var first, second bool
	dispatcher.Subscribe(EventAccountRegistered, func(context.Context, Event) error {
		first = true
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(EventAccountRegistered, func(context.Context, Event) error {
		second = true
		return nil
	})
	dispatcher.Subscribe(EventPasswordReset, func(context.Context, Event) error {
		t.Fatal("unrelated handler invoked")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventAccountRegistered,
		Email:     "a@x.com",
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if !first || !second {
		t.Fatalf("expected both handlers to run, got first=%v second=%v", first, second)
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	if err := dispatcher.Publish(context.Background(), Event{Type: EventAccountActivated}); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}
