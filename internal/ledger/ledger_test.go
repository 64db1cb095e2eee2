package ledger

import (
	"math"
	"sort"
	"strings"
	"sync"
	"testing"

	"delicious-bites/internal/menu"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type mutableFee struct {
	mu  sync.Mutex
	fee float64
}

func (m *mutableFee) DeliveryFee() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fee
}

func (m *mutableFee) set(fee float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fee = fee
}

func TestPlaceOrderAssignsMonotonicIDs(t *testing.T) {
	l := New(StaticFee(3.50))

	const n = 5
	for i := 0; i < n; i++ {
		order := l.PlaceOrder("Alice", menu.NewSimpleItem("Pizza", 10.00), nil)
		if order.ID != 1001+i {
			t.Fatalf("order %d id = %d, want %d", i, order.ID, 1001+i)
		}
	}

	if got := l.TotalOrders(); got != n {
		t.Errorf("TotalOrders = %d, want %d", got, n)
	}
}

func TestPlaceOrderSnapshotsDeliveryFee(t *testing.T) {
	fees := &mutableFee{fee: 3.50}
	l := New(fees)

	first := l.PlaceOrder("Alice", menu.NewSimpleItem("Pizza", 10.00), nil)
	if !almostEqual(first.TotalAmount, 13.50) {
		t.Fatalf("total = %v, want 13.50", first.TotalAmount)
	}

	fees.set(5.00)

	// The first order's snapshot must not move.
	if got := l.Orders()[0]; !almostEqual(got.TotalAmount, 13.50) || !almostEqual(got.DeliveryFee, 3.50) {
		t.Errorf("first order changed after fee update: total=%v fee=%v", got.TotalAmount, got.DeliveryFee)
	}

	second := l.PlaceOrder("Bob", menu.NewSimpleItem("Pizza", 10.00), nil)
	if !almostEqual(second.TotalAmount, 15.00) {
		t.Errorf("second total = %v, want 15.00", second.TotalAmount)
	}
}

func TestPlaceOrderWithoutFood(t *testing.T) {
	l := New(StaticFee(3.50))
	meal := menu.NewMealBuilder().MainDish("Pizza").Build()

	order := l.PlaceOrder("Alice", nil, &meal)
	if !almostEqual(order.TotalAmount, 3.50) {
		t.Errorf("total = %v, want delivery fee only", order.TotalAmount)
	}
	if order.Meal == nil {
		t.Errorf("meal snapshot missing")
	}
}

func TestTotalRevenue(t *testing.T) {
	l := New(StaticFee(1.00))
	l.PlaceOrder("Alice", menu.NewSimpleItem("Pizza", 10.00), nil)
	l.PlaceOrder("Bob", menu.NewSimpleItem("Salad", 5.00), nil)

	if got := l.TotalRevenue(); !almostEqual(got, 17.00) {
		t.Errorf("TotalRevenue = %v, want 17.00", got)
	}
}

func TestConcurrentPlacementsKeepIDsGapFree(t *testing.T) {
	l := New(StaticFee(3.50))

	const n = 100
	ids := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order := l.PlaceOrder("Alice", menu.NewSimpleItem("Pizza", 10.00), nil)
			ids <- order.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make([]int, 0, n)
	for id := range ids {
		seen = append(seen, id)
	}
	sort.Ints(seen)

	for i, id := range seen {
		if id != 1001+i {
			t.Fatalf("ids not gap-free: position %d has %d", i, id)
		}
	}
	if got := l.TotalOrders(); got != n {
		t.Errorf("TotalOrders = %d, want %d", got, n)
	}
}

func TestRenderAll(t *testing.T) {
	l := New(StaticFee(3.50))
	if got := l.RenderAll(); got != "No orders yet." {
		t.Errorf("empty ledger report = %q", got)
	}

	l.PlaceOrder("Alice", menu.NewSimpleItem("Pizza", 10.00), nil)
	out := l.RenderAll()
	if !strings.Contains(out, "Order #1001") {
		t.Errorf("report missing order:\n%s", out)
	}
	if !strings.Contains(out, "Total Orders: 1") {
		t.Errorf("report missing statistics:\n%s", out)
	}
	if !strings.Contains(out, "Total Revenue: $13.50") {
		t.Errorf("report missing revenue:\n%s", out)
	}
}
