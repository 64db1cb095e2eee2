package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"delicious-bites/internal/menu"
)

// firstOrderID is where order numbering starts.
const firstOrderID = 1001

// FeeSource exposes the delivery fee in effect at order time.
type FeeSource interface {
	DeliveryFee() float64
}

// StaticFee is a FeeSource with a fixed fee.
type StaticFee float64

func (f StaticFee) DeliveryFee() float64 {
	return float64(f)
}

// Order is one completed order. It is immutable once created; the delivery
// fee and total are snapshotted at creation time and never recomputed.
type Order struct {
	ID           int
	CustomerName string
	Food         menu.Component
	Meal         *menu.Meal
	PlacedAt     time.Time
	DeliveryFee  float64
	TotalAmount  float64
}

func (o Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Time: %s\n", o.PlacedAt.Format("2006-01-02 15:04"))

	if o.Food != nil {
		fmt.Fprintf(&b, "Food: %s - $%.2f\n", o.Food.Name(), o.Food.Price())
	}
	if o.Meal != nil {
		b.WriteString("Meal:\n")
		for _, line := range strings.Split(o.Meal.String(), "\n") {
			fmt.Fprintf(&b, "   %s\n", line)
		}
	}

	fmt.Fprintf(&b, "Delivery: $%.2f\n", o.DeliveryFee)
	fmt.Fprintf(&b, "Total: $%.2f", o.TotalAmount)
	return b.String()
}

// Ledger is the process-wide append-only record of completed orders. It is
// constructed once at startup and handed to consumers; all access is
// serialized so concurrent placements get strictly increasing, gap-free ids.
type Ledger struct {
	mu     sync.Mutex
	fees   FeeSource
	nextID int
	orders []Order
}

// New creates an empty ledger drawing delivery fees from fees.
func New(fees FeeSource) *Ledger {
	return &Ledger{fees: fees, nextID: firstOrderID}
}

// PlaceOrder appends a new order record, assigning the next id and
// snapshotting the current delivery fee into the total.
func (l *Ledger) PlaceOrder(customerName string, food menu.Component, meal *menu.Meal) Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	fee := l.fees.DeliveryFee()
	total := fee
	if food != nil {
		total += food.Price()
	}

	order := Order{
		ID:           l.nextID,
		CustomerName: customerName,
		Food:         food,
		Meal:         meal,
		PlacedAt:     time.Now().UTC(),
		DeliveryFee:  fee,
		TotalAmount:  total,
	}

	l.nextID++
	l.orders = append(l.orders, order)
	return order
}

// TotalOrders reports how many orders have been placed.
func (l *Ledger) TotalOrders() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}

// TotalRevenue sums the snapshotted totals of all orders.
func (l *Ledger) TotalRevenue() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, order := range l.orders {
		total += order.TotalAmount
	}
	return total
}

// Orders returns a copy of the order history in placement order.
func (l *Ledger) Orders() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// RenderAll produces a report of every order followed by a statistics block.
func (l *Ledger) RenderAll() string {
	orders := l.Orders()
	if len(orders) == 0 {
		return "No orders yet."
	}

	var b strings.Builder
	for _, order := range orders {
		b.WriteString(order.String() + "\n")
		b.WriteString(strings.Repeat("-", 41) + "\n")
	}

	b.WriteString("\nSTATISTICS:\n")
	fmt.Fprintf(&b, "Total Orders: %d\n", len(orders))
	fmt.Fprintf(&b, "Total Revenue: $%.2f", l.TotalRevenue())
	return b.String()
}
