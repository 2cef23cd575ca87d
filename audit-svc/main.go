package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "ifood/audit-svc/internal/api/http"
	"ifood/audit-svc/internal/service"
	"ifood/audit-svc/internal/storage"
	"ifood/config"
	"ifood/logger"
)

const consumerGroup = "audit-svc-consumer"

func main() {
	cfg := config.Load()
	appLog := logger.NewLogger("audit-svc", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_BROKER must be set for the audit consumer")
	}

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	store := storage.NewStore(db, rdb)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	handler := httpapi.NewHandler(service.NewAuditStats(store), appLog)
	server := httpapi.NewServer(cfg.AuditHTTPAddr, httpapi.NewRouter(handler))
	go func() {
		appLog.Info(ctx, "startup", "audit API starting", slog.String("addr", cfg.AuditHTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed:", err)
		}
	}()

	reader := config.NewKafkaReader(cfg.Kafka, consumerGroup)
	defer reader.Close()

	service.NewConsumer(reader, store, appLog).Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error(shutdownCtx, "shutdown", "graceful shutdown failed", err)
	}
}
