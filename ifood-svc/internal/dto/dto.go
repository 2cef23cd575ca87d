package dto

import (
	"time"

	"ifood/ifood-svc/internal/domain"

	"github.com/shopspring/decimal"
)

func init() {
	// Money goes over the wire as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Entity is implemented by every transfer object. Relations to other
// entities are carried as a DTO holding only the related id.
type Entity interface {
	GetID() *int64
}

// Tags: `validate` holds the full create/update rules, `patch` the rules that
// still apply to a merge-patch body where any field may be absent.

type RestaurantDTO struct {
	ID       *int64   `json:"id,omitempty"`
	Name     *string  `json:"name,omitempty" validate:"required"`
	Location *string  `json:"location,omitempty"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5" patch:"omitempty,gte=0,lte=5"`
}

type MenuDTO struct {
	ID          *int64         `json:"id,omitempty"`
	Name        *string        `json:"name,omitempty" validate:"required"`
	Description *string        `json:"description,omitempty"`
	Restaurant  *RestaurantDTO `json:"restaurant,omitempty" validate:"-" patch:"-"`
}

type DishDTO struct {
	ID          *int64           `json:"id,omitempty"`
	Name        *string          `json:"name,omitempty" validate:"required"`
	Price       *decimal.Decimal `json:"price,omitempty" validate:"required"`
	Description *string          `json:"description,omitempty"`
	SpicyLevel  *int             `json:"spicyLevel,omitempty"`
	Menu        *MenuDTO         `json:"menu,omitempty" validate:"-" patch:"-"`
}

type CustomerDTO struct {
	ID          *int64  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty" validate:"required"`
	Email       *string `json:"email,omitempty" validate:"required"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Address     *string `json:"address,omitempty"`
}

type OrderDTO struct {
	ID        *int64              `json:"id,omitempty"`
	OrderDate *time.Time          `json:"orderDate,omitempty" validate:"required"`
	Status    *domain.OrderStatus `json:"status,omitempty" validate:"required,oneof=PENDING COMPLETED CANCELLED SHIPPED" patch:"omitempty,oneof=PENDING COMPLETED CANCELLED SHIPPED"`
	Customer  *CustomerDTO        `json:"customer,omitempty" validate:"-" patch:"-"`
}

type OrderItemDTO struct {
	ID         *int64           `json:"id,omitempty"`
	Quantity   *int             `json:"quantity,omitempty" validate:"required"`
	TotalPrice *decimal.Decimal `json:"totalPrice,omitempty" validate:"required"`
	Order      *OrderDTO        `json:"order,omitempty" validate:"-" patch:"-"`
}

type PaymentDTO struct {
	ID          *int64              `json:"id,omitempty"`
	PaymentDate *time.Time          `json:"paymentDate,omitempty" validate:"required"`
	Amount      *decimal.Decimal    `json:"amount,omitempty" validate:"required"`
	PaymentType *domain.PaymentType `json:"paymentType,omitempty" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PAYPAL CASH" patch:"omitempty,oneof=CREDIT_CARD DEBIT_CARD PAYPAL CASH"`
	Order       *OrderDTO           `json:"order,omitempty" validate:"-" patch:"-"`
}

func (d *RestaurantDTO) GetID() *int64 { return d.ID }
func (d *MenuDTO) GetID() *int64       { return d.ID }
func (d *DishDTO) GetID() *int64       { return d.ID }
func (d *CustomerDTO) GetID() *int64   { return d.ID }
func (d *OrderDTO) GetID() *int64      { return d.ID }
func (d *OrderItemDTO) GetID() *int64  { return d.ID }
func (d *PaymentDTO) GetID() *int64    { return d.ID }
