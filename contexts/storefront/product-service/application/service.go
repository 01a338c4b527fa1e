package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "webshop/contexts/storefront/product-service/domain/errors"
	"webshop/contexts/storefront/product-service/ports"
)

const (
	maxNameLength        = 80
	maxDescriptionLength = 400
)

// Service implements the product catalog use cases against explicit ports.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) ListProducts(ctx context.Context) ([]ports.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s Service) GetProduct(ctx context.Context, productID string) (ports.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	return s.Repo.GetProduct(ctx, productID)
}

func (s Service) CreateProduct(ctx context.Context, input ports.CreateProductInput) (ports.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Image = strings.TrimSpace(input.Image)

	if input.Name == "" || len(input.Name) > maxNameLength {
		return ports.Product{}, domainerrors.ErrMissingProductName
	}
	if input.Description == "" || len(input.Description) > maxDescriptionLength {
		return ports.Product{}, domainerrors.ErrMissingProductDescription
	}
	if input.Price <= 0 {
		return ports.Product{}, domainerrors.ErrInvalidProductPrice
	}

	productID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Product{}, err
	}

	now := s.now()
	return s.Repo.CreateProduct(ctx, ports.Product{
		ProductID:   productID,
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s Service) UpdateProduct(ctx context.Context, productID string, update ports.ProductUpdate) (ports.Product, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" || len(trimmed) > maxNameLength {
			return ports.Product{}, domainerrors.ErrNewNameInvalid
		}
		update.Name = &trimmed
	}
	if update.Price != nil && *update.Price <= 0 {
		return ports.Product{}, domainerrors.ErrNewPriceInvalid
	}
	return s.Repo.UpdateProduct(ctx, productID, update, s.now())
}

// DeleteProduct removes the product and returns the deleted record.
func (s Service) DeleteProduct(ctx context.Context, productID string) (ports.Product, error) {
	return s.Repo.DeleteProduct(ctx, productID)
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
