package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"waiterman/config"
	httpapi "waiterman/pos-svc/internal/api/http"
	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/billing"
	"waiterman/pos-svc/internal/cart"
	"waiterman/pos-svc/internal/service"
	"waiterman/pos-svc/internal/storage"
)

func main() {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	var (
		carts    service.CartStore
		sessions service.SessionStore
	)
	if cfg.Redis.Enabled() {
		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb, cfg.CartTTL)
		carts, sessions = store, store
	} else {
		log.Printf("[pos-svc] WARNING: REDIS_HOST not set, carts and sessions are kept in memory")
		store := storage.NewMemoryStore(cfg.CartTTL)
		carts, sessions = store, store
	}

	var publisher service.TicketPublisher
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaTicketPublisher(writer)
	}

	var tickets service.TicketLog
	if cfg.Database.Enabled() {
		db := config.MustInitPostgres(cfg.Database)
		defer db.Close()
		ticketLog := storage.NewPostgresTicketLog(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := ticketLog.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		cancel()
		tickets = ticketLog
	}

	log.Printf("[pos-svc] backend %s, frontend %s", cfg.BackendURL, cfg.FrontendURL)
	httpapi.StartServer(":"+cfg.Port, newRouter(cfg, carts, sessions, publisher, tickets))
}

func newRouter(cfg *config.Config, carts service.CartStore, sessions service.SessionStore,
	publisher service.TicketPublisher, tickets service.TicketLog) http.Handler {
	client := backend.NewClient(backend.Config{BaseURL: cfg.BackendURL}, nil)
	policy := cart.Policy{FloorAtOne: cfg.Cart.FloorAtOne}
	calc := billing.Calculator{ClampAtZero: cfg.Cart.ClampGrandTotal}

	handler := httpapi.NewHandler(
		service.NewAuthService(client, sessions, carts, cfg.SessionTTL),
		service.NewPOSService(carts, client, client, client, policy, calc),
		service.NewCatalogService(client),
		service.NewOrgService(client),
		service.NewOrderBoardService(client),
		service.NewKitchenService(client, publisher, tickets),
		service.NewStaffService(client),
		service.NewReportService(client),
		service.NewQRService(client, service.DefaultQRGenerator{BaseURL: cfg.FrontendURL}),
	)
	return httpapi.NewRouter(handler, cfg.AllowedOrigins)
}
