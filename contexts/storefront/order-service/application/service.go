package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "webshop/contexts/storefront/order-service/domain/errors"
	"webshop/contexts/storefront/order-service/ports"
)

// Service implements the order use cases against explicit ports.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Events ports.EventPublisher
	Logger *slog.Logger
}

// CreateOrder records an order for the given customer. Every item must
// carry the product snapshot and a positive quantity.
func (s Service) CreateOrder(ctx context.Context, customerID string, items []ports.OrderItem) (ports.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return ports.Order{}, domainerrors.ErrInvalidItems
	}
	if len(items) == 0 {
		return ports.Order{}, domainerrors.ErrEmptyItems
	}
	for _, item := range items {
		if item.Product.ProductID == "" ||
			item.Product.Name == "" ||
			item.Product.Price <= 0 ||
			item.Quantity <= 0 {
			return ports.Order{}, domainerrors.ErrInvalidItems
		}
	}

	orderID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Order{}, err
	}

	now := s.now()
	created, err := s.Repo.CreateOrder(ctx, ports.Order{
		OrderID:    orderID,
		CustomerID: customerID,
		Items:      items,
		CreatedAt:  now,
	})
	if err != nil {
		return ports.Order{}, err
	}

	if s.Events != nil {
		event := ports.OrderCreatedEvent{
			OrderID:    created.OrderID,
			CustomerID: created.CustomerID,
			Items:      created.Items,
			OccurredAt: now,
		}
		if err := s.Events.PublishOrderCreated(ctx, event); err != nil {
			ResolveLogger(s.Logger).Error("order created event publish failed",
				"event", "order_created_publish_failed",
				"module", "storefront/order-service",
				"layer", "application",
				"order_id", created.OrderID,
				"error", err.Error(),
			)
		}
	}

	return created, nil
}

func (s Service) ListOrders(ctx context.Context) ([]ports.Order, error) {
	return s.Repo.ListOrders(ctx)
}

func (s Service) ListOrdersByCustomer(ctx context.Context, customerID string) ([]ports.Order, error) {
	return s.Repo.ListOrdersByCustomer(ctx, customerID)
}

func (s Service) GetOrder(ctx context.Context, orderID string) (ports.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return ports.Order{}, domainerrors.ErrOrderNotFound
	}
	return s.Repo.GetOrder(ctx, orderID)
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
