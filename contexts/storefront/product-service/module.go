package productservice

import (
	"log/slog"

	httpadapter "webshop/contexts/storefront/product-service/adapters/http"
	"webshop/contexts/storefront/product-service/adapters/memory"
	"webshop/contexts/storefront/product-service/application"
	"webshop/contexts/storefront/product-service/application/workers"
	"webshop/contexts/storefront/product-service/ports"
)

// Module is the composition surface for the product service.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// NewModule wires the product-service use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule wires the product service against in-memory adapters.
func NewInMemoryModule(seed []ports.Product, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}

// NewSalesCounterConsumer builds the worker that applies order events to the
// sales counters.
func NewSalesCounterConsumer(sub workers.Subscriber, repo ports.Repository, clock ports.Clock, logger *slog.Logger) workers.SalesCounterConsumer {
	return workers.SalesCounterConsumer{
		Subscriber:    sub,
		Repo:          repo,
		Clock:         clock,
		ConsumerGroup: "product-sales-counter-cg",
		Logger:        logger,
	}
}
