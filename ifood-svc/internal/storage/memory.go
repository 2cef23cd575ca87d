package storage

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"ifood/ifood-svc/internal/domain"
)

// MemoryRepository keeps rows in a map and hands out copies, so callers never
// share state with the store. Only the id is sortable.
type MemoryRepository[E any] struct {
	mu     sync.RWMutex
	table  entityTable[E]
	rows   map[int64]*E
	nextID int64
}

func newMemoryRepository[E any](table entityTable[E]) *MemoryRepository[E] {
	return &MemoryRepository[E]{table: table, rows: make(map[int64]*E)}
}

func NewMemoryRestaurantRepository() *MemoryRepository[domain.Restaurant] {
	return newMemoryRepository(restaurantTable)
}

func NewMemoryMenuRepository() *MemoryRepository[domain.Menu] {
	return newMemoryRepository(menuTable)
}

func NewMemoryDishRepository() *MemoryRepository[domain.Dish] {
	return newMemoryRepository(dishTable)
}

func NewMemoryCustomerRepository() *MemoryRepository[domain.Customer] {
	return newMemoryRepository(customerTable)
}

func NewMemoryOrderRepository() *MemoryRepository[domain.Order] {
	return newMemoryRepository(orderTable)
}

func NewMemoryOrderItemRepository() *MemoryRepository[domain.OrderItem] {
	return newMemoryRepository(orderItemTable)
}

func NewMemoryPaymentRepository() *MemoryRepository[domain.Payment] {
	return newMemoryRepository(paymentTable)
}

func copyOf[E any](e *E) *E {
	c := *e
	return &c
}

func (r *MemoryRepository[E]) Save(_ context.Context, entity *E) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.table.id(entity)
	if id == nil {
		r.nextID++
		r.table.setID(entity, r.nextID)
		r.rows[r.nextID] = copyOf(entity)
		return entity, nil
	}
	if _, ok := r.rows[*id]; !ok {
		return nil, fmt.Errorf("update %s %d: %w", r.table.name, *id, domain.ErrNotFound)
	}
	r.rows[*id] = copyOf(entity)
	return entity, nil
}

func (r *MemoryRepository[E]) FindByID(_ context.Context, id int64) (*E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", r.table.name, id, domain.ErrNotFound)
	}
	return copyOf(e), nil
}

func (r *MemoryRepository[E]) FindAll(ctx context.Context, page domain.PageRequest) ([]*E, error) {
	return r.snapshot(ctx, page)
}

// Stream iterates over a snapshot taken when iteration starts.
func (r *MemoryRepository[E]) Stream(ctx context.Context, page domain.PageRequest) iter.Seq2[*E, error] {
	return func(yield func(*E, error) bool) {
		entities, err := r.snapshot(ctx, page)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, e := range entities {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (r *MemoryRepository[E]) snapshot(ctx context.Context, page domain.PageRequest) ([]*E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	if descendingByID(page.Sort) {
		slices.Reverse(ids)
	}
	if page.Paged() {
		start := min(max(page.Offset(), 0), len(ids))
		end := start + min(page.Size, len(ids)-start)
		ids = ids[start:end]
	}
	out := make([]*E, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyOf(r.rows[id]))
	}
	r.mu.RUnlock()

	return out, nil
}

func descendingByID(sort []domain.SortOrder) bool {
	for _, s := range sort {
		if s.Property == "id" {
			return s.Descending
		}
	}
	return false
}

func (r *MemoryRepository[E]) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

func (r *MemoryRepository[E]) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *MemoryRepository[E]) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}
