package domain

// The owning side of every one-to-many relation keeps the children's
// back-pointers in sync: children leaving the collection point nowhere,
// children entering it point at the owner.

func without[T any](items []*T, target *T, equal func(a, b *T) bool) []*T {
	kept := make([]*T, 0, len(items))
	for _, item := range items {
		if !equal(item, target) {
			kept = append(kept, item)
		}
	}
	return kept
}

func (r *Restaurant) SetMenus(menus []*Menu) {
	for _, m := range r.Menus {
		m.Restaurant = nil
	}
	for _, m := range menus {
		m.Restaurant = r
	}
	r.Menus = menus
}

func (r *Restaurant) AddMenu(m *Menu) *Restaurant {
	r.Menus = append(r.Menus, m)
	m.Restaurant = r
	return r
}

func (r *Restaurant) RemoveMenu(m *Menu) *Restaurant {
	r.Menus = without(r.Menus, m, (*Menu).Equal)
	m.Restaurant = nil
	return r
}

func (m *Menu) SetDishes(dishes []*Dish) {
	for _, d := range m.Dishes {
		d.Menu = nil
	}
	for _, d := range dishes {
		d.Menu = m
	}
	m.Dishes = dishes
}

func (m *Menu) AddDish(d *Dish) *Menu {
	m.Dishes = append(m.Dishes, d)
	d.Menu = m
	return m
}

func (m *Menu) RemoveDish(d *Dish) *Menu {
	m.Dishes = without(m.Dishes, d, (*Dish).Equal)
	d.Menu = nil
	return m
}

func (c *Customer) SetOrders(orders []*Order) {
	for _, o := range c.Orders {
		o.Customer = nil
	}
	for _, o := range orders {
		o.Customer = c
	}
	c.Orders = orders
}

func (c *Customer) AddOrder(o *Order) *Customer {
	c.Orders = append(c.Orders, o)
	o.Customer = c
	return c
}

func (c *Customer) RemoveOrder(o *Order) *Customer {
	c.Orders = without(c.Orders, o, (*Order).Equal)
	o.Customer = nil
	return c
}

func (o *Order) SetOrderItems(items []*OrderItem) {
	for _, i := range o.OrderItems {
		i.Order = nil
	}
	for _, i := range items {
		i.Order = o
	}
	o.OrderItems = items
}

func (o *Order) AddOrderItem(i *OrderItem) *Order {
	o.OrderItems = append(o.OrderItems, i)
	i.Order = o
	return o
}

func (o *Order) RemoveOrderItem(i *OrderItem) *Order {
	o.OrderItems = without(o.OrderItems, i, (*OrderItem).Equal)
	i.Order = nil
	return o
}
