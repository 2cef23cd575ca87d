package storage

import (
	"database/sql"

	"ifood/ifood-svc/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// entityTable describes how one entity type maps onto its table. columns
// excludes the id, which is always the first selected column.
type entityTable[E any] struct {
	name     string
	columns  []string
	sortable map[string]string
	id       func(*E) *int64
	setID    func(*E, int64)
	values   func(*E) []any
	scan     func(rowScanner) (*E, error)
}

func refID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func nullableRef[T any](id sql.NullInt64, build func(*int64) *T) *T {
	if !id.Valid {
		return nil
	}
	v := id.Int64
	return build(&v)
}

var restaurantTable = entityTable[domain.Restaurant]{
	name:     "restaurants",
	columns:  []string{"name", "location", "rating"},
	sortable: map[string]string{"id": "id", "name": "name", "location": "location", "rating": "rating"},
	id:       func(e *domain.Restaurant) *int64 { return e.ID },
	setID:    func(e *domain.Restaurant, id int64) { e.ID = &id },
	values: func(e *domain.Restaurant) []any {
		return []any{e.Name, e.Location, e.Rating}
	},
	scan: func(row rowScanner) (*domain.Restaurant, error) {
		var e domain.Restaurant
		if err := row.Scan(&e.ID, &e.Name, &e.Location, &e.Rating); err != nil {
			return nil, err
		}
		return &e, nil
	},
}

var menuTable = entityTable[domain.Menu]{
	name:     "menus",
	columns:  []string{"name", "description", "restaurant_id"},
	sortable: map[string]string{"id": "id", "name": "name", "description": "description"},
	id:       func(e *domain.Menu) *int64 { return e.ID },
	setID:    func(e *domain.Menu, id int64) { e.ID = &id },
	values: func(e *domain.Menu) []any {
		var restaurant any
		if e.Restaurant != nil {
			restaurant = refID(e.Restaurant.ID)
		}
		return []any{e.Name, e.Description, restaurant}
	},
	scan: func(row rowScanner) (*domain.Menu, error) {
		var e domain.Menu
		var restaurantID sql.NullInt64
		if err := row.Scan(&e.ID, &e.Name, &e.Description, &restaurantID); err != nil {
			return nil, err
		}
		e.Restaurant = nullableRef(restaurantID, func(id *int64) *domain.Restaurant { return &domain.Restaurant{ID: id} })
		return &e, nil
	},
}

var dishTable = entityTable[domain.Dish]{
	name:     "dishes",
	columns:  []string{"name", "price", "description", "spicy_level", "menu_id"},
	sortable: map[string]string{"id": "id", "name": "name", "price": "price", "description": "description", "spicyLevel": "spicy_level"},
	id:       func(e *domain.Dish) *int64 { return e.ID },
	setID:    func(e *domain.Dish, id int64) { e.ID = &id },
	values: func(e *domain.Dish) []any {
		var menu any
		if e.Menu != nil {
			menu = refID(e.Menu.ID)
		}
		return []any{e.Name, e.Price, e.Description, e.SpicyLevel, menu}
	},
	scan: func(row rowScanner) (*domain.Dish, error) {
		var e domain.Dish
		var menuID sql.NullInt64
		if err := row.Scan(&e.ID, &e.Name, &e.Price, &e.Description, &e.SpicyLevel, &menuID); err != nil {
			return nil, err
		}
		e.Menu = nullableRef(menuID, func(id *int64) *domain.Menu { return &domain.Menu{ID: id} })
		return &e, nil
	},
}

var customerTable = entityTable[domain.Customer]{
	name:     "customers",
	columns:  []string{"name", "email", "phone_number", "address"},
	sortable: map[string]string{"id": "id", "name": "name", "email": "email", "phoneNumber": "phone_number", "address": "address"},
	id:       func(e *domain.Customer) *int64 { return e.ID },
	setID:    func(e *domain.Customer, id int64) { e.ID = &id },
	values: func(e *domain.Customer) []any {
		return []any{e.Name, e.Email, e.PhoneNumber, e.Address}
	},
	scan: func(row rowScanner) (*domain.Customer, error) {
		var e domain.Customer
		if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.PhoneNumber, &e.Address); err != nil {
			return nil, err
		}
		return &e, nil
	},
}

var orderTable = entityTable[domain.Order]{
	name:     "orders",
	columns:  []string{"order_date", "status", "customer_id"},
	sortable: map[string]string{"id": "id", "orderDate": "order_date", "status": "status"},
	id:       func(e *domain.Order) *int64 { return e.ID },
	setID:    func(e *domain.Order, id int64) { e.ID = &id },
	values: func(e *domain.Order) []any {
		var customer any
		if e.Customer != nil {
			customer = refID(e.Customer.ID)
		}
		return []any{e.OrderDate, string(e.Status), customer}
	},
	scan: func(row rowScanner) (*domain.Order, error) {
		var e domain.Order
		var customerID sql.NullInt64
		if err := row.Scan(&e.ID, &e.OrderDate, &e.Status, &customerID); err != nil {
			return nil, err
		}
		e.Customer = nullableRef(customerID, func(id *int64) *domain.Customer { return &domain.Customer{ID: id} })
		return &e, nil
	},
}

var orderItemTable = entityTable[domain.OrderItem]{
	name:     "order_items",
	columns:  []string{"quantity", "total_price", "order_id"},
	sortable: map[string]string{"id": "id", "quantity": "quantity", "totalPrice": "total_price"},
	id:       func(e *domain.OrderItem) *int64 { return e.ID },
	setID:    func(e *domain.OrderItem, id int64) { e.ID = &id },
	values: func(e *domain.OrderItem) []any {
		var order any
		if e.Order != nil {
			order = refID(e.Order.ID)
		}
		return []any{e.Quantity, e.TotalPrice, order}
	},
	scan: func(row rowScanner) (*domain.OrderItem, error) {
		var e domain.OrderItem
		var orderID sql.NullInt64
		if err := row.Scan(&e.ID, &e.Quantity, &e.TotalPrice, &orderID); err != nil {
			return nil, err
		}
		e.Order = nullableRef(orderID, func(id *int64) *domain.Order { return &domain.Order{ID: id} })
		return &e, nil
	},
}

var paymentTable = entityTable[domain.Payment]{
	name:     "payments",
	columns:  []string{"payment_date", "amount", "payment_type", "order_id"},
	sortable: map[string]string{"id": "id", "paymentDate": "payment_date", "amount": "amount", "paymentType": "payment_type"},
	id:       func(e *domain.Payment) *int64 { return e.ID },
	setID:    func(e *domain.Payment, id int64) { e.ID = &id },
	values: func(e *domain.Payment) []any {
		var order any
		if e.Order != nil {
			order = refID(e.Order.ID)
		}
		return []any{e.PaymentDate, e.Amount, string(e.PaymentType), order}
	},
	scan: func(row rowScanner) (*domain.Payment, error) {
		var e domain.Payment
		var orderID sql.NullInt64
		if err := row.Scan(&e.ID, &e.PaymentDate, &e.Amount, &e.PaymentType, &orderID); err != nil {
			return nil, err
		}
		e.Order = nullableRef(orderID, func(id *int64) *domain.Order { return &domain.Order{ID: id} })
		return &e, nil
	},
}
