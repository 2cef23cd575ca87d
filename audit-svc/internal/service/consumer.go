package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"ifood/audit-svc/internal/domain"
	"ifood/logger"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *logger.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, log *logger.Logger) *Consumer {
	if log == nil {
		log = logger.Discard()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
	}
}

// Start reads until ctx is cancelled. Undecodable messages are logged and
// skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info(ctx, "consume", "starting audit consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Log.Info(ctx, "consume", "audit consumer stopped")
				return
			}
			c.Log.Error(ctx, "consume", "error reading message", err)
			continue
		}

		var event domain.EntityEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.Error(ctx, "consume", "error unmarshaling message", err,
				slog.Int64("offset", message.Offset))
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			c.Log.Error(ctx, "process_event", "error processing event", err,
				slog.String("entity", event.Entity),
				slog.Int64("entity_id", event.EntityID))
		}
	}
}

// ProcessEvent audits one event. Unknown types are ignored. The daily counter
// is only bumped once the audit row is stored.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.EntityEvent) error {
	if !event.Type.Known() {
		c.Log.Debug(ctx, "process_event", "skipping unknown event type",
			slog.String("type", string(event.Type)))
		return nil
	}

	if err := c.Store.RecordEvent(ctx, event); err != nil {
		return err
	}
	if err := c.Store.IncrementDaily(ctx, event); err != nil {
		return err
	}

	c.Log.Debug(ctx, "process_event", "audited event",
		slog.String("type", string(event.Type)),
		slog.String("entity", event.Entity),
		slog.Int64("entity_id", event.EntityID))
	return nil
}
