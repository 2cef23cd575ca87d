package service

import (
	"context"
	"iter"

	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/dto"
)

// Repository persists one entity type keyed by its numeric id. FindByID
// reports a missing row as domain.ErrNotFound, and so does Save when asked to
// update an id that is not stored.
type Repository[E any] interface {
	Save(ctx context.Context, entity *E) (*E, error)
	FindByID(ctx context.Context, id int64) (*E, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]*E, error)
	Stream(ctx context.Context, page domain.PageRequest) iter.Seq2[*E, error]
	Count(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

type Mapper[E any, D any] interface {
	ToDTO(entity *E) D
	ToEntity(d D) *E
	PartialUpdate(target *E, source D)
}

// EntityCache holds DTOs per entity name and generation. Readers fetch the
// generation before loading a row and write under it; Invalidate starts a new
// generation so entries filled from older reads are never served again.
type EntityCache interface {
	Generation(ctx context.Context, entity string) (int64, error)
	Get(ctx context.Context, entity string, generation, id int64, dst any) (bool, error)
	Set(ctx context.Context, entity string, generation, id int64, value any) error
	Invalidate(ctx context.Context, entity string) error
}

type EventPublisher interface {
	PublishEntityEvent(ctx context.Context, event domain.EntityEvent) error
}

type EntityServiceInterface[D dto.Entity] interface {
	Name() string
	Save(ctx context.Context, d D) (D, error)
	Update(ctx context.Context, d D) (D, error)
	PartialUpdate(ctx context.Context, d D) (D, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]D, error)
	Stream(ctx context.Context, page domain.PageRequest) iter.Seq2[D, error]
	CountAll(ctx context.Context) (int64, error)
	FindOne(ctx context.Context, id int64) (D, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

type OrderQRServiceInterface interface {
	QRCode(ctx context.Context, orderID int64) ([]byte, error)
	QRLink(orderID int64) string
}

var (
	_ EntityServiceInterface[*dto.RestaurantDTO] = (*RestaurantService)(nil)
	_ EntityServiceInterface[*dto.MenuDTO]       = (*MenuService)(nil)
	_ EntityServiceInterface[*dto.DishDTO]       = (*DishService)(nil)
	_ EntityServiceInterface[*dto.CustomerDTO]   = (*CustomerService)(nil)
	_ EntityServiceInterface[*dto.OrderDTO]      = (*OrderService)(nil)
	_ EntityServiceInterface[*dto.OrderItemDTO]  = (*OrderItemService)(nil)
	_ EntityServiceInterface[*dto.PaymentDTO]    = (*PaymentService)(nil)
	_ OrderQRServiceInterface                    = (*OrderQRService)(nil)
)
