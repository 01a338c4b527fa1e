package messaging

import (
	"context"
	"testing"
	"time"

	"webshop/internal/shared/events"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus, err := NewKafka(nil, nil)
	if err != nil {
		t.Fatalf("new bus: %v", err)
	}

	received := make(chan events.Envelope, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = bus.Subscribe(ctx, events.TopicOrderCreated, "test-cg", func(_ context.Context, event events.Envelope) error {
		received <- event
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	sent := events.Envelope{EventID: "evt-1", EventType: "order.created"}
	if err := bus.Publish(context.Background(), events.TopicOrderCreated, sent); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case got := <-received:
		if got.EventID != sent.EventID {
			t.Fatalf("expected event %s, got %s", sent.EventID, got.EventID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestPublishToTopicWithoutSubscribersIsANoop(t *testing.T) {
	bus, err := NewKafka(nil, nil)
	if err != nil {
		t.Fatalf("new bus: %v", err)
	}
	if err := bus.Publish(context.Background(), "unused.topic", events.Envelope{EventID: "evt-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
}
