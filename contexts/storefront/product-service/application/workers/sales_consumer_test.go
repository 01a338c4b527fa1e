package workers

import (
	"context"
	"testing"
	"time"

	"webshop/contexts/storefront/product-service/adapters/memory"
	"webshop/contexts/storefront/product-service/ports"
	"webshop/internal/shared/events"
)

// syncSubscriber captures the handler so tests can drive it directly instead
// of going through the bus goroutine.
type syncSubscriber struct {
	topic   string
	group   string
	handler func(context.Context, events.Envelope) error
}

func (s *syncSubscriber) Subscribe(_ context.Context, topic string, consumerGroup string, handler func(context.Context, events.Envelope) error) error {
	s.topic = topic
	s.group = consumerGroup
	s.handler = handler
	return nil
}

func orderCreatedEnvelope(payload any) events.Envelope {
	return events.Envelope{
		EventID:        "evt-1",
		EventType:      "order.created",
		SourceService:  "order-service",
		OccurredAtUTC:  time.Now().UTC(),
		EntityType:     "order",
		EntityID:       "aaaaaaaaaaaa",
		PayloadVersion: 1,
		Payload:        payload,
	}
}

func TestSalesCounterAppliesOrderItems(t *testing.T) {
	store := memory.NewStore([]ports.Product{
		{ProductID: "0123456789ab", Name: "Lamp", Price: 10, Description: "d"},
		{ProductID: "ba9876543210", Name: "Mug", Price: 5, Description: "d"},
	})
	sub := &syncSubscriber{}
	consumer := SalesCounterConsumer{Subscriber: sub, Repo: store, Clock: store, ConsumerGroup: "test-cg"}

	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if sub.topic != events.TopicOrderCreated {
		t.Fatalf("expected subscription to %s, got %s", events.TopicOrderCreated, sub.topic)
	}

	payload := map[string]any{
		"order_id": "aaaaaaaaaaaa",
		"items": []map[string]any{
			{"product_id": "0123456789ab", "quantity": 3},
			{"product_id": "ba9876543210", "quantity": 1},
		},
	}
	if err := sub.handler(context.Background(), orderCreatedEnvelope(payload)); err != nil {
		t.Fatalf("handle: %v", err)
	}

	lamp, err := store.GetProduct(context.Background(), "0123456789ab")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if lamp.SalesCount != 3 {
		t.Fatalf("expected sales count 3, got %d", lamp.SalesCount)
	}
	mug, _ := store.GetProduct(context.Background(), "ba9876543210")
	if mug.SalesCount != 1 {
		t.Fatalf("expected sales count 1, got %d", mug.SalesCount)
	}
}

func TestSalesCounterSkipsMalformedItems(t *testing.T) {
	store := memory.NewStore([]ports.Product{
		{ProductID: "0123456789ab", Name: "Lamp", Price: 10, Description: "d"},
	})
	sub := &syncSubscriber{}
	consumer := SalesCounterConsumer{Subscriber: sub, Repo: store, Clock: store, ConsumerGroup: "test-cg"}
	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	payload := map[string]any{
		"order_id": "aaaaaaaaaaaa",
		"items": []map[string]any{
			{"product_id": "", "quantity": 3},
			{"product_id": "0123456789ab", "quantity": 0},
			{"product_id": "0123456789ab", "quantity": 2},
		},
	}
	if err := sub.handler(context.Background(), orderCreatedEnvelope(payload)); err != nil {
		t.Fatalf("handle: %v", err)
	}

	lamp, _ := store.GetProduct(context.Background(), "0123456789ab")
	if lamp.SalesCount != 2 {
		t.Fatalf("expected only the valid item applied, got %d", lamp.SalesCount)
	}
}
