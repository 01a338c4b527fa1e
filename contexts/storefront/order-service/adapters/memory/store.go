package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "webshop/contexts/storefront/order-service/domain/errors"
	"webshop/contexts/storefront/order-service/ports"
)

// Store is the in-memory order repository used by tests and the developer
// bootstrap path.
type Store struct {
	mu         sync.RWMutex
	ordersByID map[string]ports.Order
}

func NewStore(seed []ports.Order) *Store {
	s := &Store{ordersByID: make(map[string]ports.Order)}
	for _, order := range seed {
		s.ordersByID[order.OrderID] = order
	}
	return s
}

func (s *Store) CreateOrder(_ context.Context, order ports.Order) (ports.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ordersByID[order.OrderID] = order
	return order, nil
}

func (s *Store) ListOrders(_ context.Context) ([]ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Order, 0, len(s.ordersByID))
	for _, order := range s.ordersByID {
		items = append(items, order)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].OrderID < items[j].OrderID })
	return items, nil
}

func (s *Store) ListOrdersByCustomer(_ context.Context, customerID string) ([]ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Order, 0)
	for _, order := range s.ordersByID {
		if order.CustomerID == customerID {
			items = append(items, order)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].OrderID < items[j].OrderID })
	return items, nil
}

func (s *Store) GetOrder(_ context.Context, orderID string) (ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.ordersByID[orderID]
	if !ok {
		return ports.Order{}, domainerrors.ErrOrderNotFound
	}
	return order, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24], nil
}
