package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	"webshop/contexts/storefront/product-service/ports"
	"webshop/internal/shared/events"
)

// Subscriber is the message bus surface the consumer needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, events.Envelope) error) error
}

type orderCreatedPayload struct {
	OrderID string `json:"order_id"`
	Items   []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

// SalesCounterConsumer bumps product sales counters from order events.
type SalesCounterConsumer struct {
	Subscriber    Subscriber
	Repo          ports.Repository
	Clock         ports.Clock
	ConsumerGroup string
	Logger        *slog.Logger
}

func (c SalesCounterConsumer) Start(ctx context.Context) error {
	return c.Subscriber.Subscribe(ctx, events.TopicOrderCreated, c.ConsumerGroup, c.handle)
}

func (c SalesCounterConsumer) handle(ctx context.Context, event events.Envelope) error {
	raw, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}
	var payload orderCreatedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	now := c.Clock.Now().UTC()
	for _, item := range payload.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}
		if err := c.Repo.RecordSale(ctx, item.ProductID, item.Quantity, now); err != nil {
			if c.Logger != nil {
				c.Logger.Error("sales counter update failed",
					"event", "sales_counter_update_failed",
					"module", "storefront/product-service",
					"layer", "application",
					"order_id", payload.OrderID,
					"product_id", item.ProductID,
					"error", err.Error(),
				)
			}
			continue
		}
	}
	return nil
}
