package domain

import "time"

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Known reports whether the consumer handles this event type.
func (t EventType) Known() bool {
	switch t {
	case EventCreated, EventUpdated, EventDeleted:
		return true
	}
	return false
}

// EntityEvent is the message ifood-svc publishes after every write.
type EntityEvent struct {
	Type      EventType `json:"type"`
	Entity    string    `json:"entity"`
	EntityID  int64     `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditRecord is one stored row of the entity_audit table.
type AuditRecord struct {
	ID         int64     `json:"id"`
	Type       EventType `json:"type"`
	Entity     string    `json:"entity"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at"`
}

// DailyStats holds the per "<entity>:<type>" counters of one UTC day.
type DailyStats struct {
	Date   string           `json:"date"`
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}
