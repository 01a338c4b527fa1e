package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OrderProduct is the snapshot of the product at purchase time; orders keep
// their own copy so later catalog edits do not rewrite history.
type OrderProduct struct {
	ProductID   string
	Name        string
	Price       float64
	Description string
}

type OrderItem struct {
	Product  OrderProduct
	Quantity int
}

type Order struct {
	OrderID    string
	CustomerID string
	Items      []OrderItem
	CreatedAt  time.Time
}

type OrderCreatedEvent struct {
	OrderID    string
	CustomerID string
	Items      []OrderItem
	OccurredAt time.Time
}

// EventPublisher publishes module events through the event bus adapter.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
}

type Repository interface {
	CreateOrder(ctx context.Context, order Order) (Order, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]Order, error)
	GetOrder(ctx context.Context, orderID string) (Order, error)
}
