package userservice

import (
	"log/slog"

	httpadapter "webshop/contexts/identity-access/user-service/adapters/http"
	"webshop/contexts/identity-access/user-service/adapters/memory"
	"webshop/contexts/identity-access/user-service/application"
	"webshop/contexts/identity-access/user-service/ports"
)

// Module is the composition surface for the user service.
// Runtime wiring should consume Handler and Service; Store is exposed for
// tests/inspection.
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

// NewModule wires the user-service use cases against explicit ports.
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

// NewInMemoryModule wires the user service against in-memory adapters.
func NewInMemoryModule(seed []ports.User, logger *slog.Logger) Module {
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
