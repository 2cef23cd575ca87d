package domain

import "fmt"

// Entities compare by persisted id only. Two transient entities (nil id) are
// never equal, even when every other field matches; a pointer is always equal
// to itself.

func sameID(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

func (r *Restaurant) Equal(other *Restaurant) bool {
	if r == nil || other == nil {
		return false
	}
	return r == other || sameID(r.ID, other.ID)
}

func (m *Menu) Equal(other *Menu) bool {
	if m == nil || other == nil {
		return false
	}
	return m == other || sameID(m.ID, other.ID)
}

func (d *Dish) Equal(other *Dish) bool {
	if d == nil || other == nil {
		return false
	}
	return d == other || sameID(d.ID, other.ID)
}

func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	return c == other || sameID(c.ID, other.ID)
}

func (o *Order) Equal(other *Order) bool {
	if o == nil || other == nil {
		return false
	}
	return o == other || sameID(o.ID, other.ID)
}

func (i *OrderItem) Equal(other *OrderItem) bool {
	if i == nil || other == nil {
		return false
	}
	return i == other || sameID(i.ID, other.ID)
}

func (p *Payment) Equal(other *Payment) bool {
	if p == nil || other == nil {
		return false
	}
	return p == other || sameID(p.ID, other.ID)
}

func formatID(id *int64) string {
	if id == nil {
		return "null"
	}
	return fmt.Sprint(*id)
}

func formatOpt[T any](v *T) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(*v)
}

func (r *Restaurant) String() string {
	return fmt.Sprintf("Restaurant{id=%s, name='%s', location='%s', rating=%s}",
		formatID(r.ID), r.Name, formatOpt(r.Location), formatOpt(r.Rating))
}

func (m *Menu) String() string {
	return fmt.Sprintf("Menu{id=%s, name='%s', description='%s'}",
		formatID(m.ID), m.Name, formatOpt(m.Description))
}

func (d *Dish) String() string {
	return fmt.Sprintf("Dish{id=%s, name='%s', price=%v, description='%s', spicyLevel=%s}",
		formatID(d.ID), d.Name, d.Price, formatOpt(d.Description), formatOpt(d.SpicyLevel))
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, name='%s', email='%s', phoneNumber='%s', address='%s'}",
		formatID(c.ID), c.Name, c.Email, formatOpt(c.PhoneNumber), formatOpt(c.Address))
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%s, orderDate='%s', status='%s'}",
		formatID(o.ID), o.OrderDate.Format("2006-01-02T15:04:05Z07:00"), o.Status)
}

func (i *OrderItem) String() string {
	return fmt.Sprintf("OrderItem{id=%s, quantity=%d, totalPrice=%v}",
		formatID(i.ID), i.Quantity, i.TotalPrice)
}

func (p *Payment) String() string {
	return fmt.Sprintf("Payment{id=%s, paymentDate='%s', amount=%v, paymentType='%s'}",
		formatID(p.ID), p.PaymentDate.Format("2006-01-02T15:04:05Z07:00"), p.Amount, p.PaymentType)
}
