package service

import (
	"context"
	"time"

	"ifood/audit-svc/internal/domain"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type AuditStats struct {
	Store StatsStoreInterface
}

func NewAuditStats(store StatsStoreInterface) *AuditStats {
	return &AuditStats{Store: store}
}

func (s *AuditStats) Daily(ctx context.Context, day time.Time) (domain.DailyStats, error) {
	counts, err := s.Store.DailyCounts(ctx, day)
	if err != nil {
		return domain.DailyStats{}, err
	}

	stats := domain.DailyStats{Date: day.UTC().Format(time.DateOnly), Counts: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// History clamps limit to [1, MaxHistoryLimit], using DefaultHistoryLimit
// when it is not positive.
func (s *AuditStats) History(ctx context.Context, entity string, entityID int64, limit int) ([]domain.AuditRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.Store.History(ctx, entity, entityID, limit)
}
