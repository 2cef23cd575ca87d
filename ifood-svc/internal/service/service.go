package service

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/dto"
	"ifood/ifood-svc/internal/mapper"
	"ifood/logger"
)

// EntityService is the single implementation behind every entity's service:
// it converts between DTO and entity, delegates to the repository and keeps
// the optional cache and event stream in step with writes.
type EntityService[E any, D dto.Entity] struct {
	name      string
	repo      Repository[E]
	mapper    Mapper[E, D]
	newDTO    func() D
	cache     EntityCache
	publisher EventPublisher
	log       *logger.Logger

	// dependents are the entities holding a reference to this one; deleting
	// a row nulls those references, so their cached DTOs go stale too.
	dependents []string
}

func newEntityService[E any, D dto.Entity](
	name string,
	repo Repository[E],
	m Mapper[E, D],
	newDTO func() D,
	cache EntityCache,
	publisher EventPublisher,
	log *logger.Logger,
	dependents ...string,
) *EntityService[E, D] {
	if log == nil {
		log = logger.Discard()
	}
	return &EntityService[E, D]{
		name:       name,
		repo:       repo,
		mapper:     m,
		newDTO:     newDTO,
		cache:      cache,
		publisher:  publisher,
		log:        log,
		dependents: dependents,
	}
}

func (s *EntityService[E, D]) Name() string {
	return s.name
}

func (s *EntityService[E, D]) Save(ctx context.Context, d D) (D, error) {
	s.log.Debug(ctx, "save", "request to save "+s.name)
	return s.persist(ctx, s.mapper.ToEntity(d), domain.EventCreated)
}

func (s *EntityService[E, D]) Update(ctx context.Context, d D) (D, error) {
	s.log.Debug(ctx, "update", "request to update "+s.name, idAttr(d.GetID()))
	return s.persist(ctx, s.mapper.ToEntity(d), domain.EventUpdated)
}

func (s *EntityService[E, D]) PartialUpdate(ctx context.Context, d D) (D, error) {
	var zero D
	id := d.GetID()
	s.log.Debug(ctx, "partial_update", "request to partially update "+s.name, idAttr(id))
	if id == nil {
		return zero, domain.ErrNotFound
	}
	existing, err := s.repo.FindByID(ctx, *id)
	if err != nil {
		return zero, err
	}
	s.mapper.PartialUpdate(existing, d)
	return s.persist(ctx, existing, domain.EventUpdated)
}

func (s *EntityService[E, D]) persist(ctx context.Context, entity *E, event domain.EventType) (D, error) {
	var zero D
	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		return zero, err
	}
	out := s.mapper.ToDTO(saved)
	if id := out.GetID(); id != nil {
		if event != domain.EventCreated {
			s.invalidate(ctx, s.name)
		}
		s.publish(ctx, event, *id)
	}
	return out, nil
}

func (s *EntityService[E, D]) FindAll(ctx context.Context, page domain.PageRequest) ([]D, error) {
	s.log.Debug(ctx, "find_all", "request to get all "+s.name, slog.Int("page", page.Page), slog.Int("size", page.Size))
	entities, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOs(entities, s.mapper.ToDTO), nil
}

// Stream yields the same rows as FindAll, one at a time. The sequence stops
// at the first error, which it yields with a zero DTO.
func (s *EntityService[E, D]) Stream(ctx context.Context, page domain.PageRequest) iter.Seq2[D, error] {
	s.log.Debug(ctx, "stream", "request to stream all "+s.name)
	return func(yield func(D, error) bool) {
		for e, err := range s.repo.Stream(ctx, page) {
			if err != nil {
				var zero D
				yield(zero, err)
				return
			}
			if !yield(s.mapper.ToDTO(e), nil) {
				return
			}
		}
	}
}

func (s *EntityService[E, D]) CountAll(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *EntityService[E, D]) FindOne(ctx context.Context, id int64) (D, error) {
	var zero D
	s.log.Debug(ctx, "find_one", "request to get "+s.name, slog.Int64("id", id))

	// The generation is read before the row, so a write landing in between
	// leaves the fill below under a generation nobody reads any more.
	cacheable := false
	var generation int64
	if s.cache != nil {
		gen, err := s.cache.Generation(ctx, s.name)
		if err != nil {
			s.log.Warn(ctx, "cache_generation", "cache read failed", slog.String("error", err.Error()))
		} else {
			cacheable, generation = true, gen
			cached := s.newDTO()
			if ok, err := s.cache.Get(ctx, s.name, generation, id, cached); err != nil {
				s.log.Warn(ctx, "cache_get", "cache read failed", slog.String("error", err.Error()))
			} else if ok {
				return cached, nil
			}
		}
	}

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	out := s.mapper.ToDTO(entity)

	if cacheable {
		if err := s.cache.Set(ctx, s.name, generation, id, out); err != nil {
			s.log.Warn(ctx, "cache_set", "cache write failed", slog.String("error", err.Error()))
		}
	}
	return out, nil
}

func (s *EntityService[E, D]) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Delete succeeds whether or not the row existed.
func (s *EntityService[E, D]) Delete(ctx context.Context, id int64) error {
	s.log.Debug(ctx, "delete", "request to delete "+s.name, slog.Int64("id", id))
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, s.name)
	for _, dependent := range s.dependents {
		s.invalidate(ctx, dependent)
	}
	s.publish(ctx, domain.EventDeleted, id)
	return nil
}

func (s *EntityService[E, D]) invalidate(ctx context.Context, entity string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, entity); err != nil {
		s.log.Warn(ctx, "cache_invalidate", "cache invalidation failed",
			slog.String("entity", entity), slog.String("error", err.Error()))
	}
}

func (s *EntityService[E, D]) publish(ctx context.Context, eventType domain.EventType, id int64) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEntityEvent(ctx, domain.EntityEvent{
		Type:      eventType,
		Entity:    s.name,
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn(ctx, "publish_event", "failed to publish "+string(eventType)+" event", slog.String("error", err.Error()))
	}
}

func idAttr(id *int64) slog.Attr {
	if id == nil {
		return slog.String("id", "null")
	}
	return slog.Int64("id", *id)
}
