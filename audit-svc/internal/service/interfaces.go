package service

import (
	"context"
	"time"

	"ifood/audit-svc/internal/domain"
	"ifood/audit-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordEvent(ctx context.Context, event domain.EntityEvent) error
	IncrementDaily(ctx context.Context, event domain.EntityEvent) error
}

type StatsStoreInterface interface {
	DailyCounts(ctx context.Context, day time.Time) (map[string]int64, error)
	History(ctx context.Context, entity string, entityID int64, limit int) ([]domain.AuditRecord, error)
}

type StatsInterface interface {
	Daily(ctx context.Context, day time.Time) (domain.DailyStats, error)
	History(ctx context.Context, entity string, entityID int64, limit int) ([]domain.AuditRecord, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.EntityEvent) error
}

var (
	_ StoreInterface      = (*storage.Store)(nil)
	_ StatsStoreInterface = (*storage.Store)(nil)
	_ MessageReader       = (*kafka.Reader)(nil)
	_ ConsumerInterface   = (*Consumer)(nil)
	_ StatsInterface      = (*AuditStats)(nil)
)
