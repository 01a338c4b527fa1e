package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainerrors "webshop/contexts/storefront/product-service/domain/errors"
	"webshop/contexts/storefront/product-service/adapters/memory"
	"webshop/contexts/storefront/product-service/ports"
)

func newService(seed []ports.Product) (Service, *memory.Store) {
	store := memory.NewStore(seed)
	return Service{Repo: store, Clock: store, IDGen: store}, store
}

func TestCreateProductTrimsAndValidates(t *testing.T) {
	service, _ := newService(nil)

	created, err := service.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:        "  Desk Lamp  ",
		Price:       34.5,
		Description: "  Adjustable arm  ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Desk Lamp" || created.Description != "Adjustable arm" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if created.ProductID == "" {
		t.Fatal("expected a generated id")
	}
}

func TestCreateProductValidation(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input ports.CreateProductInput
		want  error
	}{
		{"empty name", ports.CreateProductInput{Price: 1, Description: "d"}, domainerrors.ErrMissingProductName},
		{"name too long", ports.CreateProductInput{Name: strings.Repeat("x", 81), Price: 1, Description: "d"}, domainerrors.ErrMissingProductName},
		{"empty description", ports.CreateProductInput{Name: "n", Price: 1}, domainerrors.ErrMissingProductDescription},
		{"description too long", ports.CreateProductInput{Name: "n", Price: 1, Description: strings.Repeat("x", 401)}, domainerrors.ErrMissingProductDescription},
		{"zero price", ports.CreateProductInput{Name: "n", Description: "d"}, domainerrors.ErrInvalidProductPrice},
		{"negative price", ports.CreateProductInput{Name: "n", Price: -1, Description: "d"}, domainerrors.ErrInvalidProductPrice},
	}
	for _, tc := range cases {
		if _, err := service.CreateProduct(ctx, tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestUpdateProductAppliesOnlyProvidedFields(t *testing.T) {
	service, _ := newService([]ports.Product{
		{ProductID: "0123456789ab", Name: "Lamp", Price: 10, Description: "Old"},
	})

	newPrice := 12.5
	updated, err := service.UpdateProduct(context.Background(), "0123456789ab", ports.ProductUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 12.5 {
		t.Fatalf("expected updated price, got %v", updated.Price)
	}
	if updated.Name != "Lamp" || updated.Description != "Old" {
		t.Fatalf("expected untouched fields, got %+v", updated)
	}
}

func TestUpdateProductRejectsInvalidFields(t *testing.T) {
	service, _ := newService([]ports.Product{
		{ProductID: "0123456789ab", Name: "Lamp", Price: 10, Description: "Old"},
	})
	ctx := context.Background()

	empty := "   "
	if _, err := service.UpdateProduct(ctx, "0123456789ab", ports.ProductUpdate{Name: &empty}); !errors.Is(err, domainerrors.ErrNewNameInvalid) {
		t.Fatalf("expected ErrNewNameInvalid, got %v", err)
	}
	zero := 0.0
	if _, err := service.UpdateProduct(ctx, "0123456789ab", ports.ProductUpdate{Price: &zero}); !errors.Is(err, domainerrors.ErrNewPriceInvalid) {
		t.Fatalf("expected ErrNewPriceInvalid, got %v", err)
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	service, _ := newService(nil)
	name := "Lamp"
	if _, err := service.UpdateProduct(context.Background(), "0123456789ab", ports.ProductUpdate{Name: &name}); !errors.Is(err, domainerrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
