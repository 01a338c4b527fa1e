package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	userservice "webshop/contexts/identity-access/user-service"
	userevents "webshop/contexts/identity-access/user-service/adapters/events"
	userpostgres "webshop/contexts/identity-access/user-service/adapters/postgres"
	orderservice "webshop/contexts/storefront/order-service"
	orderevents "webshop/contexts/storefront/order-service/adapters/events"
	orderpostgres "webshop/contexts/storefront/order-service/adapters/postgres"
	productservice "webshop/contexts/storefront/product-service"
	productpostgres "webshop/contexts/storefront/product-service/adapters/postgres"
	productworkers "webshop/contexts/storefront/product-service/application/workers"
	"webshop/internal/platform/config"
	"webshop/internal/platform/db"
	"webshop/internal/platform/httpserver"
	"webshop/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	salesCounter productworkers.SalesCounterConsumer
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	users := userservice.NewModule(userservice.Dependencies{
		Repository: userpostgres.NewRepository(pg.DB, logger),
		Clock:      userpostgres.SystemClock{},
		IDGen:      userpostgres.HexIDGenerator{},
		Events:     userevents.NewPublisher(bus, logger),
		Logger:     logger,
	})

	products := productservice.NewModule(productservice.Dependencies{
		Repository: productpostgres.NewRepository(pg.DB, logger),
		Clock:      productpostgres.SystemClock{},
		IDGen:      productpostgres.HexIDGenerator{},
		Logger:     logger,
	})

	orders := orderservice.NewModule(orderservice.Dependencies{
		Repository: orderpostgres.NewRepository(pg.DB, logger),
		Clock:      orderpostgres.SystemClock{},
		IDGen:      orderpostgres.HexIDGenerator{},
		Events:     orderevents.NewPublisher(bus, logger),
		Logger:     logger,
	})

	server := httpserver.New(
		users,
		products,
		orders,
		logger,
		normalizeAddr(cfg.HTTPPort),
		cfg.PublicDir,
		cfg.AuthRealm,
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	repo := productpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres:     pg,
		salesCounter: productservice.NewSalesCounterConsumer(bus, repo, productpostgres.SystemClock{}, logger),
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.salesCounter.Start(ctx); err != nil {
		return err
	}

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	<-ctx.Done()
	return nil
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":3000"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
