package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("entity not found")

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
)

type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
	PaymentTypeDebitCard  PaymentType = "DEBIT_CARD"
	PaymentTypePaypal     PaymentType = "PAYPAL"
	PaymentTypeCash       PaymentType = "CASH"
)

type Restaurant struct {
	ID       *int64
	Name     string
	Location *string
	Rating   *float64
	Menus    []*Menu
}

type Menu struct {
	ID          *int64
	Name        string
	Description *string
	Restaurant  *Restaurant
	Dishes      []*Dish
}

type Dish struct {
	ID          *int64
	Name        string
	Price       decimal.Decimal
	Description *string
	SpicyLevel  *int
	Menu        *Menu
}

type Customer struct {
	ID          *int64
	Name        string
	Email       string
	PhoneNumber *string
	Address     *string
	Orders      []*Order
}

type Order struct {
	ID         *int64
	OrderDate  time.Time
	Status     OrderStatus
	Customer   *Customer
	OrderItems []*OrderItem
}

type OrderItem struct {
	ID         *int64
	Quantity   int
	TotalPrice decimal.Decimal
	Order      *Order
}

type Payment struct {
	ID          *int64
	PaymentDate time.Time
	Amount      decimal.Decimal
	PaymentType PaymentType
	Order       *Order
}
