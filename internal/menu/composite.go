package menu

import (
	"fmt"
	"strings"
)

// Order is the top-level composite holding a customer's selected items.
type Order struct {
	id       int
	customer string
	items    []Component
}

// NewOrder creates an empty order for the given customer.
func NewOrder(id int, customer string) *Order {
	return &Order{id: id, customer: customer}
}

// ID returns the order's display identifier.
func (o *Order) ID() int {
	return o.id
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() string {
	return o.customer
}

// Items returns a copy of the current child sequence.
func (o *Order) Items() []Component {
	out := make([]Component, len(o.items))
	copy(out, o.items)
	return out
}

// Add appends a child to the end of the sequence.
func (o *Order) Add(child Component) error {
	o.items = append(o.items, child)
	return nil
}

// Remove drops the first occurrence of child. Absent children are a no-op.
func (o *Order) Remove(child Component) error {
	for i, item := range o.items {
		if item == child {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (o *Order) Name() string {
	return fmt.Sprintf("Order #%d", o.id)
}

// Price sums the current children recursively. It is recomputed on every
// call so decorator wrapping applied after Add is reflected.
func (o *Order) Price() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Price()
	}
	return total
}

// Render produces the order tree as text. At the top level it prints a
// banner with the computed total as header and footer.
func (o *Order) Render(depth int) string {
	if depth > 0 {
		return renderChildren(depth, o.Name(), o.Price(), o.items)
	}

	rule := strings.Repeat("=", 60)
	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "ORDER #%d - %s\n", o.id, o.customer)
	b.WriteString(rule + "\n")

	if len(o.items) == 0 {
		b.WriteString("  (Cart is empty)\n")
	} else {
		for _, item := range o.items {
			b.WriteString(item.Render(1) + "\n")
		}
	}

	b.WriteString(strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "TOTAL: $%.2f\n", o.Price())
	b.WriteString(rule)
	return b.String()
}

// Combo is a named composite grouping items that are priced together, such
// as a bundled meal inside an order.
type Combo struct {
	name  string
	items []Component
}

// NewCombo creates an empty combo with the given display name.
func NewCombo(name string) *Combo {
	return &Combo{name: name}
}

// Items returns a copy of the current child sequence.
func (c *Combo) Items() []Component {
	out := make([]Component, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Combo) Add(child Component) error {
	c.items = append(c.items, child)
	return nil
}

func (c *Combo) Remove(child Component) error {
	for i, item := range c.items {
		if item == child {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (c *Combo) Name() string {
	return c.name
}

func (c *Combo) Price() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price()
	}
	return total
}

func (c *Combo) Render(depth int) string {
	return renderChildren(depth, c.name+" [combo]", c.Price(), c.items)
}

func renderChildren(depth int, name string, price float64, items []Component) string {
	lines := []string{fmt.Sprintf("%s└─ %s - $%.2f", indent(depth), name, price)}
	for _, item := range items {
		lines = append(lines, item.Render(depth+1))
	}
	return strings.Join(lines, "\n")
}
