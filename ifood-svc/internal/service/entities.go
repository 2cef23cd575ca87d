package service

import (
	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/dto"
	"ifood/ifood-svc/internal/mapper"
	"ifood/logger"
)

type (
	RestaurantService = EntityService[domain.Restaurant, *dto.RestaurantDTO]
	MenuService       = EntityService[domain.Menu, *dto.MenuDTO]
	DishService       = EntityService[domain.Dish, *dto.DishDTO]
	CustomerService   = EntityService[domain.Customer, *dto.CustomerDTO]
	OrderService      = EntityService[domain.Order, *dto.OrderDTO]
	OrderItemService  = EntityService[domain.OrderItem, *dto.OrderItemDTO]
	PaymentService    = EntityService[domain.Payment, *dto.PaymentDTO]
)

// Cache and publisher may be nil.

func NewRestaurantService(repo Repository[domain.Restaurant], cache EntityCache, publisher EventPublisher, log *logger.Logger) *RestaurantService {
	return newEntityService("restaurant", repo, Mapper[domain.Restaurant, *dto.RestaurantDTO](mapper.RestaurantMapper{}),
		func() *dto.RestaurantDTO { return &dto.RestaurantDTO{} }, cache, publisher, log, "menu")
}

func NewMenuService(repo Repository[domain.Menu], cache EntityCache, publisher EventPublisher, log *logger.Logger) *MenuService {
	return newEntityService("menu", repo, Mapper[domain.Menu, *dto.MenuDTO](mapper.MenuMapper{}),
		func() *dto.MenuDTO { return &dto.MenuDTO{} }, cache, publisher, log, "dish")
}

func NewDishService(repo Repository[domain.Dish], cache EntityCache, publisher EventPublisher, log *logger.Logger) *DishService {
	return newEntityService("dish", repo, Mapper[domain.Dish, *dto.DishDTO](mapper.DishMapper{}),
		func() *dto.DishDTO { return &dto.DishDTO{} }, cache, publisher, log)
}

func NewCustomerService(repo Repository[domain.Customer], cache EntityCache, publisher EventPublisher, log *logger.Logger) *CustomerService {
	return newEntityService("customer", repo, Mapper[domain.Customer, *dto.CustomerDTO](mapper.CustomerMapper{}),
		func() *dto.CustomerDTO { return &dto.CustomerDTO{} }, cache, publisher, log, "order")
}

func NewOrderService(repo Repository[domain.Order], cache EntityCache, publisher EventPublisher, log *logger.Logger) *OrderService {
	return newEntityService("order", repo, Mapper[domain.Order, *dto.OrderDTO](mapper.OrderMapper{}),
		func() *dto.OrderDTO { return &dto.OrderDTO{} }, cache, publisher, log, "orderItem", "payment")
}

func NewOrderItemService(repo Repository[domain.OrderItem], cache EntityCache, publisher EventPublisher, log *logger.Logger) *OrderItemService {
	return newEntityService("orderItem", repo, Mapper[domain.OrderItem, *dto.OrderItemDTO](mapper.OrderItemMapper{}),
		func() *dto.OrderItemDTO { return &dto.OrderItemDTO{} }, cache, publisher, log)
}

func NewPaymentService(repo Repository[domain.Payment], cache EntityCache, publisher EventPublisher, log *logger.Logger) *PaymentService {
	return newEntityService("payment", repo, Mapper[domain.Payment, *dto.PaymentDTO](mapper.PaymentMapper{}),
		func() *dto.PaymentDTO { return &dto.PaymentDTO{} }, cache, publisher, log)
}
