// Package mapper converts between domain entities and their transfer objects.
// Conversions copy every pointer they hand out, so neither side aliases the
// other, and to-one relations collapse to a stub carrying only the id.
package mapper

import (
	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/dto"
)

func ptr[T any](v T) *T {
	return &v
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// merge overwrites *dst with *src only when src is set.
func merge[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// mergeOpt is merge for optional target fields.
func mergeOpt[T any](dst **T, src *T) {
	if src != nil {
		*dst = clone(src)
	}
}

type RestaurantMapper struct{}

func (RestaurantMapper) ToDTO(e *domain.Restaurant) *dto.RestaurantDTO {
	if e == nil {
		return nil
	}
	return &dto.RestaurantDTO{
		ID:       clone(e.ID),
		Name:     ptr(e.Name),
		Location: clone(e.Location),
		Rating:   clone(e.Rating),
	}
}

func (RestaurantMapper) ToEntity(d *dto.RestaurantDTO) *domain.Restaurant {
	if d == nil {
		return nil
	}
	e := &domain.Restaurant{
		ID:       clone(d.ID),
		Location: clone(d.Location),
		Rating:   clone(d.Rating),
	}
	merge(&e.Name, d.Name)
	return e
}

func (RestaurantMapper) PartialUpdate(target *domain.Restaurant, source *dto.RestaurantDTO) {
	mergeOpt(&target.ID, source.ID)
	merge(&target.Name, source.Name)
	mergeOpt(&target.Location, source.Location)
	mergeOpt(&target.Rating, source.Rating)
}

func restaurantRef(e *domain.Restaurant) *dto.RestaurantDTO {
	if e == nil {
		return nil
	}
	return &dto.RestaurantDTO{ID: clone(e.ID)}
}

func restaurantStub(d *dto.RestaurantDTO) *domain.Restaurant {
	if d == nil {
		return nil
	}
	return &domain.Restaurant{ID: clone(d.ID)}
}

type MenuMapper struct{}

func (MenuMapper) ToDTO(e *domain.Menu) *dto.MenuDTO {
	if e == nil {
		return nil
	}
	return &dto.MenuDTO{
		ID:          clone(e.ID),
		Name:        ptr(e.Name),
		Description: clone(e.Description),
		Restaurant:  restaurantRef(e.Restaurant),
	}
}

func (MenuMapper) ToEntity(d *dto.MenuDTO) *domain.Menu {
	if d == nil {
		return nil
	}
	e := &domain.Menu{
		ID:          clone(d.ID),
		Description: clone(d.Description),
		Restaurant:  restaurantStub(d.Restaurant),
	}
	merge(&e.Name, d.Name)
	return e
}

func (MenuMapper) PartialUpdate(target *domain.Menu, source *dto.MenuDTO) {
	mergeOpt(&target.ID, source.ID)
	merge(&target.Name, source.Name)
	mergeOpt(&target.Description, source.Description)
	if source.Restaurant != nil {
		target.Restaurant = restaurantStub(source.Restaurant)
	}
}

func menuRef(e *domain.Menu) *dto.MenuDTO {
	if e == nil {
		return nil
	}
	return &dto.MenuDTO{ID: clone(e.ID)}
}

func menuStub(d *dto.MenuDTO) *domain.Menu {
	if d == nil {
		return nil
	}
	return &domain.Menu{ID: clone(d.ID)}
}

type DishMapper struct{}

func (DishMapper) ToDTO(e *domain.Dish) *dto.DishDTO {
	if e == nil {
		return nil
	}
	return &dto.DishDTO{
		ID:          clone(e.ID),
		Name:        ptr(e.Name),
		Price:       ptr(e.Price),
		Description: clone(e.Description),
		SpicyLevel:  clone(e.SpicyLevel),
		Menu:        menuRef(e.Menu),
	}
}

func (DishMapper) ToEntity(d *dto.DishDTO) *domain.Dish {
	if d == nil {
		return nil
	}
	e := &domain.Dish{
		ID:          clone(d.ID),
		Description: clone(d.Description),
		SpicyLevel:  clone(d.SpicyLevel),
		Menu:        menuStub(d.Menu),
	}
	merge(&e.Name, d.Name)
	merge(&e.Price, d.Price)
	return e
}

func (DishMapper) PartialUpdate(target *domain.Dish, source *dto.DishDTO) {
	mergeOpt(&target.ID, source.ID)
	merge(&target.Name, source.Name)
	merge(&target.Price, source.Price)
	mergeOpt(&target.Description, source.Description)
	mergeOpt(&target.SpicyLevel, source.SpicyLevel)
	if source.Menu != nil {
		target.Menu = menuStub(source.Menu)
	}
}

type CustomerMapper struct{}

func (CustomerMapper) ToDTO(e *domain.Customer) *dto.CustomerDTO {
	if e == nil {
		return nil
	}
	return &dto.CustomerDTO{
		ID:          clone(e.ID),
		Name:        ptr(e.Name),
		Email:       ptr(e.Email),
		PhoneNumber: clone(e.PhoneNumber),
		Address:     clone(e.Address),
	}
}

func (CustomerMapper) ToEntity(d *dto.CustomerDTO) *domain.Customer {
	if d == nil {
		return nil
	}
	e := &domain.Customer{
		ID:          clone(d.ID),
		PhoneNumber: clone(d.PhoneNumber),
		Address:     clone(d.Address),
	}
	merge(&e.Name, d.Name)
	merge(&e.Email, d.Email)
	return e
}

func (CustomerMapper) PartialUpdate(target *domain.Customer, source *dto.CustomerDTO) {
	mergeOpt(&target.ID, source.ID)
	merge(&target.Name, source.Name)
	merge(&target.Email, source.Email)
	mergeOpt(&target.PhoneNumber, source.PhoneNumber)
	mergeOpt(&target.Address, source.Address)
}

func customerRef(e *domain.Customer) *dto.CustomerDTO {
	if e == nil {
		return nil
	}
	return &dto.CustomerDTO{ID: clone(e.ID)}
}

func customerStub(d *dto.CustomerDTO) *domain.Customer {
	if d == nil {
		return nil
	}
	return &domain.Customer{ID: clone(d.ID)}
}

type OrderMapper struct{}

func (OrderMapper) ToDTO(e *domain.Order) *dto.OrderDTO {
	if e == nil {
		return nil
	}
	return &dto.OrderDTO{
		ID:        clone(e.ID),
		OrderDate: ptr(e.OrderDate),
		Status:    ptr(e.Status),
		Customer:  customerRef(e.Customer),
	}
}

func (OrderMapper) ToEntity(d *dto.OrderDTO) *domain.Order {
	if d == nil {
		return nil
	}
	e := &domain.Order{
		ID:       clone(d.ID),
		Customer: customerStub(d.Customer),
	}
	merge(&e.OrderDate, d.OrderDate)
	merge(&e.Status, d.Status)
	return e
}

func (OrderMapper) PartialUpdate(target *domain.Order, source *dto.OrderDTO) {
	mergeOpt(&target.ID, source.ID)
	merge(&target.OrderDate, source.OrderDate)
	merge(&target.Status, source.Status)
	if source.Customer != nil {
		target.Customer = customerStub(source.Customer)
	}
}

func orderRef(e *domain.Order) *dto.OrderDTO {
	if e == nil {
		return nil
	}
	return &dto.OrderDTO{ID: clone(e.ID)}
}

func orderStub(d *dto.OrderDTO) *domain.Order {
	if d == nil {
		return nil
	}
	return &domain.Order{ID: clone(d.ID)}
}

type OrderItemMapper struct{}

func (OrderItemMapper) ToDTO(e *domain.OrderItem) *dto.OrderItemDTO {
	if e == nil {
		return nil
	}
	return &dto.OrderItemDTO{
		ID:         clone(e.ID),
		Quantity:   ptr(e.Quantity),
		TotalPrice: ptr(e.TotalPrice),
		Order:      orderRef(e.Order),
	}
}

func (OrderItemMapper) ToEntity(d *dto.OrderItemDTO) *domain.OrderItem {
	if d == nil {
		return nil
	}
	e := &domain.OrderItem{
		ID:    clone(d.ID),
		Order: orderStub(d.Order),
	}
	merge(&e.Quantity, d.Quantity)
	merge(&e.TotalPrice, d.TotalPrice)
	return e
}

func (OrderItemMapper) PartialUpdate(target *domain.OrderItem, source *dto.OrderItemDTO) {
	mergeOpt(&target.ID, source.ID)
	merge(&target.Quantity, source.Quantity)
	merge(&target.TotalPrice, source.TotalPrice)
	if source.Order != nil {
		target.Order = orderStub(source.Order)
	}
}

type PaymentMapper struct{}

func (PaymentMapper) ToDTO(e *domain.Payment) *dto.PaymentDTO {
	if e == nil {
		return nil
	}
	return &dto.PaymentDTO{
		ID:          clone(e.ID),
		PaymentDate: ptr(e.PaymentDate),
		Amount:      ptr(e.Amount),
		PaymentType: ptr(e.PaymentType),
		Order:       orderRef(e.Order),
	}
}

func (PaymentMapper) ToEntity(d *dto.PaymentDTO) *domain.Payment {
	if d == nil {
		return nil
	}
	e := &domain.Payment{
		ID:    clone(d.ID),
		Order: orderStub(d.Order),
	}
	merge(&e.PaymentDate, d.PaymentDate)
	merge(&e.Amount, d.Amount)
	merge(&e.PaymentType, d.PaymentType)
	return e
}

func (PaymentMapper) PartialUpdate(target *domain.Payment, source *dto.PaymentDTO) {
	mergeOpt(&target.ID, source.ID)
	merge(&target.PaymentDate, source.PaymentDate)
	merge(&target.Amount, source.Amount)
	merge(&target.PaymentType, source.PaymentType)
	if source.Order != nil {
		target.Order = orderStub(source.Order)
	}
}

// ToDTOs maps a slice with any of the mappers above.
func ToDTOs[E any, D any](entities []*E, toDTO func(*E) D) []D {
	out := make([]D, 0, len(entities))
	for _, e := range entities {
		out = append(out, toDTO(e))
	}
	return out
}
