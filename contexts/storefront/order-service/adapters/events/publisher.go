package events

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"webshop/contexts/storefront/order-service/ports"
	sharedevents "webshop/internal/shared/events"
)

// Bus is the message bus surface the publisher needs.
type Bus interface {
	Publish(ctx context.Context, topic string, event sharedevents.Envelope) error
}

// Publisher maps module events onto the shared envelope and hands them to
// the bus.
type Publisher struct {
	bus    Bus
	logger *slog.Logger
}

func NewPublisher(bus Bus, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, logger: logger}
}

func (p Publisher) PublishOrderCreated(ctx context.Context, event ports.OrderCreatedEvent) error {
	if p.bus == nil {
		return nil
	}

	items := make([]map[string]any, 0, len(event.Items))
	for _, item := range event.Items {
		items = append(items, map[string]any{
			"product_id": item.Product.ProductID,
			"quantity":   item.Quantity,
		})
	}

	return p.bus.Publish(ctx, sharedevents.TopicOrderCreated, sharedevents.Envelope{
		EventID:        strings.ReplaceAll(uuid.NewString(), "-", ""),
		EventType:      "order.created",
		SourceService:  "storefront/order-service",
		OccurredAtUTC:  event.OccurredAt.UTC(),
		EntityType:     "order",
		EntityID:       event.OrderID,
		PayloadVersion: 1,
		Payload: map[string]any{
			"order_id":    event.OrderID,
			"customer_id": event.CustomerID,
			"items":       items,
		},
	})
}
