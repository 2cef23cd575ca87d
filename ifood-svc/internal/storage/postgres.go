package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"strings"

	"ifood/ifood-svc/internal/domain"
)

type PostgresRepository[E any] struct {
	DB    *sql.DB
	table entityTable[E]
}

func NewRestaurantRepository(db *sql.DB) *PostgresRepository[domain.Restaurant] {
	return &PostgresRepository[domain.Restaurant]{DB: db, table: restaurantTable}
}

func NewMenuRepository(db *sql.DB) *PostgresRepository[domain.Menu] {
	return &PostgresRepository[domain.Menu]{DB: db, table: menuTable}
}

func NewDishRepository(db *sql.DB) *PostgresRepository[domain.Dish] {
	return &PostgresRepository[domain.Dish]{DB: db, table: dishTable}
}

func NewCustomerRepository(db *sql.DB) *PostgresRepository[domain.Customer] {
	return &PostgresRepository[domain.Customer]{DB: db, table: customerTable}
}

func NewOrderRepository(db *sql.DB) *PostgresRepository[domain.Order] {
	return &PostgresRepository[domain.Order]{DB: db, table: orderTable}
}

func NewOrderItemRepository(db *sql.DB) *PostgresRepository[domain.OrderItem] {
	return &PostgresRepository[domain.OrderItem]{DB: db, table: orderItemTable}
}

func NewPaymentRepository(db *sql.DB) *PostgresRepository[domain.Payment] {
	return &PostgresRepository[domain.Payment]{DB: db, table: paymentTable}
}

func (r *PostgresRepository[E]) selectColumns() string {
	return "id, " + strings.Join(r.table.columns, ", ")
}

// Save inserts entities without an id and updates the rest. Updating an id
// that has no row reports domain.ErrNotFound.
func (r *PostgresRepository[E]) Save(ctx context.Context, entity *E) (*E, error) {
	values := r.table.values(entity)
	placeholders := make([]string, len(r.table.columns))

	id := r.table.id(entity)
	if id == nil {
		for i := range r.table.columns {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			r.table.name, strings.Join(r.table.columns, ", "), strings.Join(placeholders, ", "))

		var newID int64
		if err := r.DB.QueryRowContext(ctx, query, values...).Scan(&newID); err != nil {
			return nil, fmt.Errorf("insert into %s: %w", r.table.name, err)
		}
		r.table.setID(entity, newID)
		return entity, nil
	}

	for i, column := range r.table.columns {
		placeholders[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		r.table.name, strings.Join(placeholders, ", "), len(r.table.columns)+1)

	res, err := r.DB.ExecContext(ctx, query, append(values, *id)...)
	if err != nil {
		return nil, fmt.Errorf("update %s %d: %w", r.table.name, *id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update %s %d: %w", r.table.name, *id, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("update %s %d: %w", r.table.name, *id, domain.ErrNotFound)
	}
	return entity, nil
}

func (r *PostgresRepository[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectColumns(), r.table.name)
	entity, err := r.table.scan(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %d: %w", r.table.name, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %d: %w", r.table.name, id, err)
	}
	return entity, nil
}

func (r *PostgresRepository[E]) FindAll(ctx context.Context, page domain.PageRequest) ([]*E, error) {
	entities := make([]*E, 0)
	for e, err := range r.Stream(ctx, page) {
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// Stream runs the query when iteration starts and holds the rows open until
// iteration ends.
func (r *PostgresRepository[E]) Stream(ctx context.Context, page domain.PageRequest) iter.Seq2[*E, error] {
	query, args := r.listQuery(page)
	return func(yield func(*E, error) bool) {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			yield(nil, fmt.Errorf("list %s: %w", r.table.name, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			e, err := r.table.scan(rows)
			if err != nil {
				yield(nil, fmt.Errorf("scan %s: %w", r.table.name, err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("list %s: %w", r.table.name, err))
		}
	}
}

func (r *PostgresRepository[E]) listQuery(page domain.PageRequest) (string, []any) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		r.selectColumns(), r.table.name, orderBy(page.Sort, r.table.sortable))
	if !page.Paged() {
		return query, nil
	}
	return query + " LIMIT $1 OFFSET $2", []any{page.Size, page.Offset()}
}

// orderBy keeps whitelisted properties only and always ends on id so that
// pages are stable.
func orderBy(sort []domain.SortOrder, sortable map[string]string) string {
	clauses := make([]string, 0, len(sort)+1)
	seen := make(map[string]bool, len(sort))
	for _, s := range sort {
		column, ok := sortable[s.Property]
		if !ok || seen[column] {
			continue
		}
		seen[column] = true
		direction := "ASC"
		if s.Descending {
			direction = "DESC"
		}
		clauses = append(clauses, column+" "+direction)
	}
	if !seen["id"] {
		clauses = append(clauses, "id ASC")
	}
	return strings.Join(clauses, ", ")
}

func (r *PostgresRepository[E]) Count(ctx context.Context) (int64, error) {
	var total int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table.name)
	if err := r.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.table.name, err)
	}
	return total, nil
}

func (r *PostgresRepository[E]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", r.table.name)
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists %s %d: %w", r.table.name, id, err)
	}
	return exists, nil
}

// DeleteByID does not report whether a row was removed.
func (r *PostgresRepository[E]) DeleteByID(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table.name)
	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", r.table.name, id, err)
	}
	return nil
}
