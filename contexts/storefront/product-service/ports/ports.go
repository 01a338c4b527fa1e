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

type Product struct {
	ProductID   string
	Name        string
	Price       float64
	Image       string
	Description string
	SalesCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Image       string
	Description string
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Image       *string
	Description *string
}

type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, productID string) (Product, error)
	CreateProduct(ctx context.Context, product Product) (Product, error)
	UpdateProduct(ctx context.Context, productID string, update ProductUpdate, now time.Time) (Product, error)
	DeleteProduct(ctx context.Context, productID string) (Product, error)
	RecordSale(ctx context.Context, productID string, quantity int, now time.Time) error
}
