package mapper

import (
	"testing"
	"time"

	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRestaurantRoundTrip(t *testing.T) {
	m := RestaurantMapper{}
	in := &dto.RestaurantDTO{ID: ptr(int64(3)), Name: ptr("Cafe"), Location: ptr("Main St"), Rating: ptr(4.5)}

	out := m.ToDTO(m.ToEntity(in))
	assert.Equal(t, in, out)
	assert.NotSame(t, in.Name, out.Name)
	assert.NotSame(t, in.Rating, out.Rating)
}

func TestNilMapsToNil(t *testing.T) {
	assert.Nil(t, RestaurantMapper{}.ToDTO(nil))
	assert.Nil(t, MenuMapper{}.ToEntity(nil))
	assert.Nil(t, PaymentMapper{}.ToDTO(nil))
}

func TestRelationsBecomeIDStubs(t *testing.T) {
	restaurant := &domain.Restaurant{ID: ptr(int64(1)), Name: "Cafe", Location: ptr("Main St")}
	menu := &domain.Menu{ID: ptr(int64(2)), Name: "Lunch"}
	restaurant.AddMenu(menu)

	got := MenuMapper{}.ToDTO(menu)
	require.NotNil(t, got.Restaurant)
	assert.Equal(t, &dto.RestaurantDTO{ID: ptr(int64(1))}, got.Restaurant)

	back := MenuMapper{}.ToEntity(got)
	require.NotNil(t, back.Restaurant)
	assert.Equal(t, int64(1), *back.Restaurant.ID)
	assert.Empty(t, back.Restaurant.Name)
	assert.Nil(t, back.Restaurant.Menus)
}

func TestOrderRoundTrip(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := &dto.OrderDTO{
		ID:        ptr(int64(9)),
		OrderDate: &when,
		Status:    ptr(domain.OrderStatusShipped),
		Customer:  &dto.CustomerDTO{ID: ptr(int64(4))},
	}
	assert.Equal(t, in, OrderMapper{}.ToDTO(OrderMapper{}.ToEntity(in)))
}

func TestPaymentAndItemRoundTrip(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	payment := &dto.PaymentDTO{
		ID:          ptr(int64(1)),
		PaymentDate: &when,
		Amount:      ptr(money("12.5")),
		PaymentType: ptr(domain.PaymentTypePaypal),
		Order:       &dto.OrderDTO{ID: ptr(int64(9))},
	}
	assert.Equal(t, payment, PaymentMapper{}.ToDTO(PaymentMapper{}.ToEntity(payment)))

	item := &dto.OrderItemDTO{ID: ptr(int64(2)), Quantity: ptr(3), TotalPrice: ptr(money("30")), Order: &dto.OrderDTO{ID: ptr(int64(9))}}
	assert.Equal(t, item, OrderItemMapper{}.ToDTO(OrderItemMapper{}.ToEntity(item)))

	dish := &dto.DishDTO{ID: ptr(int64(5)), Name: ptr("Taco"), Price: ptr(money("9.5")), SpicyLevel: ptr(2), Menu: &dto.MenuDTO{ID: ptr(int64(2))}}
	assert.Equal(t, dish, DishMapper{}.ToDTO(DishMapper{}.ToEntity(dish)))

	customer := &dto.CustomerDTO{ID: ptr(int64(4)), Name: ptr("Ann"), Email: ptr("ann@example.com"), Address: ptr("Elm 1")}
	assert.Equal(t, customer, CustomerMapper{}.ToDTO(CustomerMapper{}.ToEntity(customer)))
}

func TestPartialUpdateKeepsAbsentFields(t *testing.T) {
	target := &domain.Restaurant{ID: ptr(int64(1)), Name: "Cafe", Location: ptr("Main St")}

	RestaurantMapper{}.PartialUpdate(target, &dto.RestaurantDTO{ID: ptr(int64(1)), Rating: ptr(4.5)})

	assert.Equal(t, "Cafe", target.Name)
	assert.Equal(t, "Main St", *target.Location)
	require.NotNil(t, target.Rating)
	assert.Equal(t, 4.5, *target.Rating)
}

func TestPartialUpdateIsIdempotent(t *testing.T) {
	patch := &dto.DishDTO{Price: ptr(money("11")), Description: ptr("hot")}
	first := &domain.Dish{ID: ptr(int64(5)), Name: "Taco", Price: money("9.5")}
	second := &domain.Dish{ID: ptr(int64(5)), Name: "Taco", Price: money("9.5")}

	DishMapper{}.PartialUpdate(first, patch)
	DishMapper{}.PartialUpdate(second, patch)
	DishMapper{}.PartialUpdate(second, patch)

	assert.Equal(t, first, second)
	assert.NotSame(t, patch.Description, first.Description)
}

func TestPartialUpdateRelations(t *testing.T) {
	menu := &domain.Menu{ID: ptr(int64(2))}
	target := &domain.Dish{ID: ptr(int64(5)), Name: "Taco", Menu: menu}

	DishMapper{}.PartialUpdate(target, &dto.DishDTO{Name: ptr("Burrito")})
	assert.Same(t, menu, target.Menu)

	DishMapper{}.PartialUpdate(target, &dto.DishDTO{Menu: &dto.MenuDTO{ID: ptr(int64(7))}})
	require.NotNil(t, target.Menu)
	assert.Equal(t, int64(7), *target.Menu.ID)

	order := &domain.Order{ID: ptr(int64(1)), Status: domain.OrderStatusPending}
	OrderMapper{}.PartialUpdate(order, &dto.OrderDTO{Status: ptr(domain.OrderStatusCancelled), Customer: &dto.CustomerDTO{ID: ptr(int64(4))}})
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)
	assert.Equal(t, int64(4), *order.Customer.ID)
}

func TestToDTOs(t *testing.T) {
	entities := []*domain.Customer{
		{ID: ptr(int64(1)), Name: "Ann", Email: "a@x"},
		{ID: ptr(int64(2)), Name: "Bob", Email: "b@x"},
	}
	got := ToDTOs(entities, CustomerMapper{}.ToDTO)
	require.Len(t, got, 2)
	assert.Equal(t, "Bob", *got[1].Name)
}

type entityMapper[E any, D any] interface {
	ToDTO(e *E) D
	PartialUpdate(target *E, source D)
}

// patchCase sets one field: patch builds the source, apply makes the same
// change on the expected DTO and touch scribbles over the source afterwards.
type patchCase[D any] struct {
	name  string
	patch func() D
	apply func(want D)
	touch func(patch D)
}

func runPartialUpdateCases[E any, D any](t *testing.T, m entityMapper[E, D], base func() *E, empty func() D, cases []patchCase[D]) {
	t.Helper()

	t.Run("empty patch", func(t *testing.T) {
		target := base()
		m.PartialUpdate(target, empty())
		assert.Equal(t, m.ToDTO(base()), m.ToDTO(target))
	})

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target := base()
			want := m.ToDTO(base())
			c.apply(want)

			patch := c.patch()
			m.PartialUpdate(target, patch)
			assert.Equal(t, want, m.ToDTO(target))

			c.touch(patch)
			assert.Equal(t, want, m.ToDTO(target))
		})
	}

	t.Run("every field in turn", func(t *testing.T) {
		target := base()
		want := m.ToDTO(base())
		for _, c := range cases {
			m.PartialUpdate(target, c.patch())
			c.apply(want)
		}
		assert.Equal(t, want, m.ToDTO(target))
	})
}

func TestPartialUpdateAllEntities(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 4, 2, 18, 30, 0, 0, time.UTC)

	t.Run("restaurant", func(t *testing.T) {
		runPartialUpdateCases(t, RestaurantMapper{},
			func() *domain.Restaurant {
				return &domain.Restaurant{ID: ptr(int64(1)), Name: "Cafe", Location: ptr("Main St"), Rating: ptr(3.0)}
			},
			func() *dto.RestaurantDTO { return &dto.RestaurantDTO{} },
			[]patchCase[*dto.RestaurantDTO]{
				{
					name:  "name",
					patch: func() *dto.RestaurantDTO { return &dto.RestaurantDTO{Name: ptr("Bistro")} },
					apply: func(w *dto.RestaurantDTO) { w.Name = ptr("Bistro") },
					touch: func(p *dto.RestaurantDTO) { *p.Name = "x" },
				},
				{
					name:  "location",
					patch: func() *dto.RestaurantDTO { return &dto.RestaurantDTO{Location: ptr("Elm St")} },
					apply: func(w *dto.RestaurantDTO) { w.Location = ptr("Elm St") },
					touch: func(p *dto.RestaurantDTO) { *p.Location = "x" },
				},
				{
					name:  "rating",
					patch: func() *dto.RestaurantDTO { return &dto.RestaurantDTO{Rating: ptr(4.5)} },
					apply: func(w *dto.RestaurantDTO) { w.Rating = ptr(4.5) },
					touch: func(p *dto.RestaurantDTO) { *p.Rating = 0 },
				},
			})
	})

	t.Run("menu", func(t *testing.T) {
		runPartialUpdateCases(t, MenuMapper{},
			func() *domain.Menu {
				return &domain.Menu{ID: ptr(int64(2)), Name: "Lunch", Description: ptr("noon"), Restaurant: &domain.Restaurant{ID: ptr(int64(1))}}
			},
			func() *dto.MenuDTO { return &dto.MenuDTO{} },
			[]patchCase[*dto.MenuDTO]{
				{
					name:  "name",
					patch: func() *dto.MenuDTO { return &dto.MenuDTO{Name: ptr("Dinner")} },
					apply: func(w *dto.MenuDTO) { w.Name = ptr("Dinner") },
					touch: func(p *dto.MenuDTO) { *p.Name = "x" },
				},
				{
					name:  "description",
					patch: func() *dto.MenuDTO { return &dto.MenuDTO{Description: ptr("evening")} },
					apply: func(w *dto.MenuDTO) { w.Description = ptr("evening") },
					touch: func(p *dto.MenuDTO) { *p.Description = "x" },
				},
				{
					name:  "restaurant",
					patch: func() *dto.MenuDTO { return &dto.MenuDTO{Restaurant: &dto.RestaurantDTO{ID: ptr(int64(8)), Name: ptr("ignored")}} },
					apply: func(w *dto.MenuDTO) { w.Restaurant = &dto.RestaurantDTO{ID: ptr(int64(8))} },
					touch: func(p *dto.MenuDTO) { *p.Restaurant.ID = 99 },
				},
			})
	})

	t.Run("dish", func(t *testing.T) {
		runPartialUpdateCases(t, DishMapper{},
			func() *domain.Dish {
				return &domain.Dish{ID: ptr(int64(5)), Name: "Taco", Price: money("9.5"), Description: ptr("mild"), SpicyLevel: ptr(1), Menu: &domain.Menu{ID: ptr(int64(2))}}
			},
			func() *dto.DishDTO { return &dto.DishDTO{} },
			[]patchCase[*dto.DishDTO]{
				{
					name:  "name",
					patch: func() *dto.DishDTO { return &dto.DishDTO{Name: ptr("Burrito")} },
					apply: func(w *dto.DishDTO) { w.Name = ptr("Burrito") },
					touch: func(p *dto.DishDTO) { *p.Name = "x" },
				},
				{
					name:  "price",
					patch: func() *dto.DishDTO { return &dto.DishDTO{Price: ptr(money("11"))} },
					apply: func(w *dto.DishDTO) { w.Price = ptr(money("11")) },
					touch: func(p *dto.DishDTO) { *p.Price = decimal.Zero },
				},
				{
					name:  "description",
					patch: func() *dto.DishDTO { return &dto.DishDTO{Description: ptr("hot")} },
					apply: func(w *dto.DishDTO) { w.Description = ptr("hot") },
					touch: func(p *dto.DishDTO) { *p.Description = "x" },
				},
				{
					name:  "spicy level",
					patch: func() *dto.DishDTO { return &dto.DishDTO{SpicyLevel: ptr(4)} },
					apply: func(w *dto.DishDTO) { w.SpicyLevel = ptr(4) },
					touch: func(p *dto.DishDTO) { *p.SpicyLevel = 0 },
				},
				{
					name:  "menu",
					patch: func() *dto.DishDTO { return &dto.DishDTO{Menu: &dto.MenuDTO{ID: ptr(int64(7))}} },
					apply: func(w *dto.DishDTO) { w.Menu = &dto.MenuDTO{ID: ptr(int64(7))} },
					touch: func(p *dto.DishDTO) { *p.Menu.ID = 99 },
				},
			})
	})

	t.Run("customer", func(t *testing.T) {
		runPartialUpdateCases(t, CustomerMapper{},
			func() *domain.Customer {
				return &domain.Customer{ID: ptr(int64(4)), Name: "Ann", Email: "ann@example.com", PhoneNumber: ptr("555-0100"), Address: ptr("Elm 1")}
			},
			func() *dto.CustomerDTO { return &dto.CustomerDTO{} },
			[]patchCase[*dto.CustomerDTO]{
				{
					name:  "name",
					patch: func() *dto.CustomerDTO { return &dto.CustomerDTO{Name: ptr("Bea")} },
					apply: func(w *dto.CustomerDTO) { w.Name = ptr("Bea") },
					touch: func(p *dto.CustomerDTO) { *p.Name = "x" },
				},
				{
					name:  "email",
					patch: func() *dto.CustomerDTO { return &dto.CustomerDTO{Email: ptr("bea@example.com")} },
					apply: func(w *dto.CustomerDTO) { w.Email = ptr("bea@example.com") },
					touch: func(p *dto.CustomerDTO) { *p.Email = "x" },
				},
				{
					name:  "phone number",
					patch: func() *dto.CustomerDTO { return &dto.CustomerDTO{PhoneNumber: ptr("555-0199")} },
					apply: func(w *dto.CustomerDTO) { w.PhoneNumber = ptr("555-0199") },
					touch: func(p *dto.CustomerDTO) { *p.PhoneNumber = "x" },
				},
				{
					name:  "address",
					patch: func() *dto.CustomerDTO { return &dto.CustomerDTO{Address: ptr("Oak 2")} },
					apply: func(w *dto.CustomerDTO) { w.Address = ptr("Oak 2") },
					touch: func(p *dto.CustomerDTO) { *p.Address = "x" },
				},
			})
	})

	t.Run("order", func(t *testing.T) {
		runPartialUpdateCases(t, OrderMapper{},
			func() *domain.Order {
				return &domain.Order{ID: ptr(int64(9)), OrderDate: day1, Status: domain.OrderStatusPending, Customer: &domain.Customer{ID: ptr(int64(4))}}
			},
			func() *dto.OrderDTO { return &dto.OrderDTO{} },
			[]patchCase[*dto.OrderDTO]{
				{
					name:  "order date",
					patch: func() *dto.OrderDTO { return &dto.OrderDTO{OrderDate: ptr(day2)} },
					apply: func(w *dto.OrderDTO) { w.OrderDate = ptr(day2) },
					touch: func(p *dto.OrderDTO) { *p.OrderDate = time.Time{} },
				},
				{
					name:  "status",
					patch: func() *dto.OrderDTO { return &dto.OrderDTO{Status: ptr(domain.OrderStatusShipped)} },
					apply: func(w *dto.OrderDTO) { w.Status = ptr(domain.OrderStatusShipped) },
					touch: func(p *dto.OrderDTO) { *p.Status = domain.OrderStatusCancelled },
				},
				{
					name:  "customer",
					patch: func() *dto.OrderDTO { return &dto.OrderDTO{Customer: &dto.CustomerDTO{ID: ptr(int64(6))}} },
					apply: func(w *dto.OrderDTO) { w.Customer = &dto.CustomerDTO{ID: ptr(int64(6))} },
					touch: func(p *dto.OrderDTO) { *p.Customer.ID = 99 },
				},
			})
	})

	t.Run("order item", func(t *testing.T) {
		runPartialUpdateCases(t, OrderItemMapper{},
			func() *domain.OrderItem {
				return &domain.OrderItem{ID: ptr(int64(3)), Quantity: 2, TotalPrice: money("19"), Order: &domain.Order{ID: ptr(int64(9))}}
			},
			func() *dto.OrderItemDTO { return &dto.OrderItemDTO{} },
			[]patchCase[*dto.OrderItemDTO]{
				{
					name:  "quantity",
					patch: func() *dto.OrderItemDTO { return &dto.OrderItemDTO{Quantity: ptr(5)} },
					apply: func(w *dto.OrderItemDTO) { w.Quantity = ptr(5) },
					touch: func(p *dto.OrderItemDTO) { *p.Quantity = 0 },
				},
				{
					name:  "total price",
					patch: func() *dto.OrderItemDTO { return &dto.OrderItemDTO{TotalPrice: ptr(money("47.5"))} },
					apply: func(w *dto.OrderItemDTO) { w.TotalPrice = ptr(money("47.5")) },
					touch: func(p *dto.OrderItemDTO) { *p.TotalPrice = decimal.Zero },
				},
				{
					name:  "order",
					patch: func() *dto.OrderItemDTO { return &dto.OrderItemDTO{Order: &dto.OrderDTO{ID: ptr(int64(10))}} },
					apply: func(w *dto.OrderItemDTO) { w.Order = &dto.OrderDTO{ID: ptr(int64(10))} },
					touch: func(p *dto.OrderItemDTO) { *p.Order.ID = 99 },
				},
			})
	})

	t.Run("payment", func(t *testing.T) {
		runPartialUpdateCases(t, PaymentMapper{},
			func() *domain.Payment {
				return &domain.Payment{ID: ptr(int64(1)), PaymentDate: day1, Amount: money("12.5"), PaymentType: domain.PaymentTypeCash, Order: &domain.Order{ID: ptr(int64(9))}}
			},
			func() *dto.PaymentDTO { return &dto.PaymentDTO{} },
			[]patchCase[*dto.PaymentDTO]{
				{
					name:  "payment date",
					patch: func() *dto.PaymentDTO { return &dto.PaymentDTO{PaymentDate: ptr(day2)} },
					apply: func(w *dto.PaymentDTO) { w.PaymentDate = ptr(day2) },
					touch: func(p *dto.PaymentDTO) { *p.PaymentDate = time.Time{} },
				},
				{
					name:  "amount",
					patch: func() *dto.PaymentDTO { return &dto.PaymentDTO{Amount: ptr(money("99.99"))} },
					apply: func(w *dto.PaymentDTO) { w.Amount = ptr(money("99.99")) },
					touch: func(p *dto.PaymentDTO) { *p.Amount = decimal.Zero },
				},
				{
					name:  "payment type",
					patch: func() *dto.PaymentDTO { return &dto.PaymentDTO{PaymentType: ptr(domain.PaymentTypeCreditCard)} },
					apply: func(w *dto.PaymentDTO) { w.PaymentType = ptr(domain.PaymentTypeCreditCard) },
					touch: func(p *dto.PaymentDTO) { *p.PaymentType = domain.PaymentTypePaypal },
				},
				{
					name:  "order",
					patch: func() *dto.PaymentDTO { return &dto.PaymentDTO{Order: &dto.OrderDTO{ID: ptr(int64(10))}} },
					apply: func(w *dto.PaymentDTO) { w.Order = &dto.OrderDTO{ID: ptr(int64(10))} },
					touch: func(p *dto.PaymentDTO) { *p.Order.ID = 99 },
				},
			})
	})
}
