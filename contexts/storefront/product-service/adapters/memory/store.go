package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "webshop/contexts/storefront/product-service/domain/errors"
	"webshop/contexts/storefront/product-service/ports"
)

// Store is the in-memory product repository used by tests and the developer
// bootstrap path.
type Store struct {
	mu           sync.RWMutex
	productsByID map[string]ports.Product
}

func NewStore(seed []ports.Product) *Store {
	s := &Store{productsByID: make(map[string]ports.Product)}
	for _, product := range seed {
		s.productsByID[product.ProductID] = product
	}
	return s
}

func (s *Store) ListProducts(_ context.Context) ([]ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Product, 0, len(s.productsByID))
	for _, product := range s.productsByID {
		items = append(items, product)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items, nil
}

func (s *Store) GetProduct(_ context.Context, productID string) (ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.productsByID[productID]
	if !ok {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	return product, nil
}

func (s *Store) CreateProduct(_ context.Context, product ports.Product) (ports.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productsByID[product.ProductID] = product
	return product, nil
}

func (s *Store) UpdateProduct(_ context.Context, productID string, update ports.ProductUpdate, now time.Time) (ports.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.productsByID[productID]
	if !ok {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Image != nil {
		product.Image = *update.Image
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	product.UpdatedAt = now.UTC()
	s.productsByID[productID] = product
	return product, nil
}

func (s *Store) DeleteProduct(_ context.Context, productID string) (ports.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.productsByID[productID]
	if !ok {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	delete(s.productsByID, productID)
	return product, nil
}

func (s *Store) RecordSale(_ context.Context, productID string, quantity int, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.productsByID[productID]
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	product.SalesCount += int64(quantity)
	product.UpdatedAt = now.UTC()
	s.productsByID[productID] = product
	return nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24], nil
}
