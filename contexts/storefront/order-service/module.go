package orderservice

import (
	"log/slog"

	httpadapter "webshop/contexts/storefront/order-service/adapters/http"
	"webshop/contexts/storefront/order-service/adapters/memory"
	"webshop/contexts/storefront/order-service/application"
	"webshop/contexts/storefront/order-service/ports"
)

// Module is the composition surface for the order service.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

// NewModule wires the order-service use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Events: deps.Events,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule wires the order service against in-memory adapters.
func NewInMemoryModule(seed []ports.Order, logger *slog.Logger) Module {
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
