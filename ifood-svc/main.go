package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ifood/config"
	httpapi "ifood/ifood-svc/internal/api/http"
	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/service"
	"ifood/ifood-svc/internal/storage"
	"ifood/logger"
)

type repositories struct {
	restaurants service.Repository[domain.Restaurant]
	menus       service.Repository[domain.Menu]
	dishes      service.Repository[domain.Dish]
	customers   service.Repository[domain.Customer]
	orders      service.Repository[domain.Order]
	orderItems  service.Repository[domain.OrderItem]
	payments    service.Repository[domain.Payment]
}

func memoryRepositories() repositories {
	return repositories{
		restaurants: storage.NewMemoryRestaurantRepository(),
		menus:       storage.NewMemoryMenuRepository(),
		dishes:      storage.NewMemoryDishRepository(),
		customers:   storage.NewMemoryCustomerRepository(),
		orders:      storage.NewMemoryOrderRepository(),
		orderItems:  storage.NewMemoryOrderItemRepository(),
		payments:    storage.NewMemoryPaymentRepository(),
	}
}

func postgresRepositories(db *sql.DB) repositories {
	return repositories{
		restaurants: storage.NewRestaurantRepository(db),
		menus:       storage.NewMenuRepository(db),
		dishes:      storage.NewDishRepository(db),
		customers:   storage.NewCustomerRepository(db),
		orders:      storage.NewOrderRepository(db),
		orderItems:  storage.NewOrderItemRepository(db),
		payments:    storage.NewPaymentRepository(db),
	}
}

func newServices(repos repositories, cache service.EntityCache, publisher service.EventPublisher, log *logger.Logger, baseURL string) httpapi.Services {
	orders := service.NewOrderService(repos.orders, cache, publisher, log)
	return httpapi.Services{
		Restaurants: service.NewRestaurantService(repos.restaurants, cache, publisher, log),
		Menus:       service.NewMenuService(repos.menus, cache, publisher, log),
		Dishes:      service.NewDishService(repos.dishes, cache, publisher, log),
		Customers:   service.NewCustomerService(repos.customers, cache, publisher, log),
		Orders:      orders,
		OrderItems:  service.NewOrderItemService(repos.orderItems, cache, publisher, log),
		Payments:    service.NewPaymentService(repos.payments, cache, publisher, log),
		OrderQR:     service.NewOrderQRService(orders, service.DefaultQRGenerator{BaseURL: baseURL}),
	}
}

func main() {
	cfg := config.Load()
	appLog := logger.NewLogger("ifood-svc", cfg.LogLevel)
	ctx := context.Background()

	var repos repositories
	if cfg.DB.Driver == config.DriverMemory {
		appLog.Warn(ctx, "startup", "using in-memory storage, data is lost on restart")
		repos = memoryRepositories()
	} else {
		db := config.MustInitPostgres(cfg.DB)
		defer db.Close()
		if err := storage.ApplyMigrations(ctx, db, appLog); err != nil {
			log.Fatal("Failed to apply migrations:", err)
		}
		repos = postgresRepositories(db)
	}

	var cache service.EntityCache
	if cfg.Redis.Enabled() {
		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.Redis.TTL)
	}

	var publisher service.EventPublisher
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	handler := httpapi.NewHandler(newServices(repos, cache, publisher, appLog, cfg.PublicBaseURL), cfg.AppName, appLog)
	server := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handler, cfg.AllowedOrigins))

	go func() {
		appLog.Info(ctx, "startup", "ifood service starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("db_driver", cfg.DB.Driver),
			slog.Bool("cache", cache != nil),
			slog.Bool("events", publisher != nil),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error(ctx, "shutdown", "graceful shutdown failed", err)
	}
	appLog.Info(ctx, "shutdown", "ifood service stopped")
}
