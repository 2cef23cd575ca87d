package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"ifood/audit-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const dailyTTL = 7 * 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entity_audit (
			id          BIGSERIAL PRIMARY KEY,
			event_type  VARCHAR(16)  NOT NULL,
			entity      VARCHAR(64)  NOT NULL,
			entity_id   BIGINT       NOT NULL,
			occurred_at TIMESTAMPTZ  NOT NULL,
			recorded_at TIMESTAMPTZ  NOT NULL DEFAULT now()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_entity_audit_entity ON entity_audit (entity, entity_id)",
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *Store) RecordEvent(ctx context.Context, event domain.EntityEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entity_audit (event_type, entity, entity_id, occurred_at)
		VALUES ($1, $2, $3, $4)
	`, string(event.Type), event.Entity, event.EntityID, s.occurredAt(event))
	if err != nil {
		return fmt.Errorf("record %s %s %d: %w", event.Type, event.Entity, event.EntityID, err)
	}
	return nil
}

// DailyKey is the Redis hash holding the counters for the event's UTC day.
func (s *Store) DailyKey(event domain.EntityEvent) string {
	return dailyKey(s.occurredAt(event))
}

func dailyKey(t time.Time) string {
	return "audit:daily:" + t.UTC().Format(time.DateOnly)
}

func (s *Store) IncrementDaily(ctx context.Context, event domain.EntityEvent) error {
	key := s.DailyKey(event)
	field := event.Entity + ":" + string(event.Type)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, field, 1)
		pipe.Expire(ctx, key, dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("increment %s %s: %w", key, field, err)
	}
	return nil
}

func (s *Store) occurredAt(event domain.EntityEvent) time.Time {
	if event.Timestamp.IsZero() {
		return s.now()
	}
	return event.Timestamp
}

// DailyCounts returns the counters of the UTC day containing day. A day with
// no events yields an empty map.
func (s *Store) DailyCounts(ctx context.Context, day time.Time) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, dailyKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		counts[field] = n
	}
	return counts, nil
}

// History lists the audit rows of one entity, newest first.
func (s *Store) History(ctx context.Context, entity string, entityID int64, limit int) ([]domain.AuditRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_type, entity, entity_id, occurred_at, recorded_at
		FROM entity_audit
		WHERE entity = $1 AND entity_id = $2
		ORDER BY occurred_at DESC, id DESC
		LIMIT $3
	`, entity, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("history %s %d: %w", entity, entityID, err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		var rec domain.AuditRecord
		var eventType string
		if err := rows.Scan(&rec.ID, &eventType, &rec.Entity, &rec.EntityID, &rec.OccurredAt, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("history %s %d: %w", entity, entityID, err)
		}
		rec.Type = domain.EventType(eventType)
		records = append(records, rec)
	}
	return records, rows.Err()
}
