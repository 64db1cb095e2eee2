package menu

import (
	"strings"
	"testing"
)

func TestDecoratorOrderSensitivity(t *testing.T) {
	base := func() Component { return NewSimpleItem("Pizza", 10.00) }

	discountThenExpress := NewExpressDelivery(NewDiscountCoupon(base(), 20))
	if got := discountThenExpress.Price(); !almostEqual(got, 13.00) {
		t.Errorf("discount-then-express price = %v, want 13.00", got)
	}

	expressThenDiscount := NewDiscountCoupon(NewExpressDelivery(base()), 20)
	if got := expressThenDiscount.Price(); !almostEqual(got, 12.00) {
		t.Errorf("express-then-discount price = %v, want 12.00", got)
	}
}

func TestDiscountClampedToFiftyPercent(t *testing.T) {
	item := NewSimpleItem("Pizza", 10.00)

	over := NewDiscountCoupon(item, 75)
	capped := NewDiscountCoupon(item, 50)

	if over.Price() != capped.Price() {
		t.Errorf("Discount(75) price = %v, want same as Discount(50) = %v", over.Price(), capped.Price())
	}
	if over.Percent() != 50 {
		t.Errorf("Percent() = %v, want 50", over.Percent())
	}

	if negative := NewDiscountCoupon(item, -10); negative.Price() != item.Price() {
		t.Errorf("negative discount changed price: %v", negative.Price())
	}
}

func TestStackedDiscountsCompound(t *testing.T) {
	// 20% on top of 20% is 0.8*0.8 = 36% off, not 40%. The compounding is
	// observed behavior and kept as is.
	item := NewDiscountCoupon(NewDiscountCoupon(NewSimpleItem("Pizza", 10.00), 20), 20)
	if got := item.Price(); !almostEqual(got, 6.40) {
		t.Errorf("stacked discount price = %v, want 6.40", got)
	}
}

func TestLoyaltyPointsFrozenAtConstruction(t *testing.T) {
	loyalty := NewLoyaltyPoints(NewSimpleItem("Pizza", 10.00))
	if got := loyalty.BonusPoints(); got != 100 {
		t.Fatalf("BonusPoints = %d, want 100", got)
	}
	if got := loyalty.Price(); !almostEqual(got, 10.00) {
		t.Errorf("loyalty must not change price, got %v", got)
	}

	// Wrapping further changes the price but never the snapshot.
	express := NewExpressDelivery(loyalty)
	if got := express.Price(); !almostEqual(got, 15.00) {
		t.Errorf("express price = %v, want 15.00", got)
	}
	if got := loyalty.BonusPoints(); got != 100 {
		t.Errorf("BonusPoints after further wrapping = %d, want 100", got)
	}
}

func TestLoyaltyPointsSeeEarlierFees(t *testing.T) {
	loyalty := NewLoyaltyPoints(NewExpressDelivery(NewSimpleItem("Pizza", 10.00)))
	if got := loyalty.BonusPoints(); got != 150 {
		t.Errorf("BonusPoints = %d, want 150 (fee included in snapshot)", got)
	}
}

func TestSpecialOccasionFeeAndMessage(t *testing.T) {
	occasion := NewSpecialOccasion(NewSimpleItem("Pizza", 10.00), "Happy Birthday!")
	if got := occasion.Price(); !almostEqual(got, 11.50) {
		t.Errorf("occasion price = %v, want 11.50", got)
	}
	if got := occasion.OccasionMessage(); got != "Happy Birthday!" {
		t.Errorf("OccasionMessage = %q", got)
	}
	// The decorator itself accepts any message; callers validate upstream.
	if empty := NewSpecialOccasion(NewSimpleItem("Pizza", 10.00), ""); empty.OccasionMessage() != "" {
		t.Errorf("empty message must pass through unchanged")
	}
}

func TestDecoratorNameAnnotations(t *testing.T) {
	base := NewSimpleItem("Pizza", 10.00)

	tests := []struct {
		name string
		item Component
		want string
	}{
		{"discount", NewDiscountCoupon(base, 20), "Pizza [20% OFF]"},
		{"express", NewExpressDelivery(base), "Pizza [Express Delivery]"},
		{"loyalty", NewLoyaltyPoints(base), "Pizza [+100 Loyalty Points]"},
		{"occasion", NewSpecialOccasion(base, "hi"), "Pizza [Special Occasion]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Name(); got != tt.want {
				t.Errorf("Name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecoratedFoodEndToEnd(t *testing.T) {
	food := NewPizza()
	food.AddIngredient(Ingredient{Name: "Mozzarella Cheese", Price: 1.50})
	food.AddIngredient(Ingredient{Name: "Tomato Sauce", Price: 0.75})
	if got := food.Price(); !almostEqual(got, 11.24) {
		t.Fatalf("food price = %v, want 11.24", got)
	}

	discounted := NewDiscountCoupon(food, 10)
	if got := discounted.Price(); !almostEqual(got, 10.116) {
		t.Fatalf("discounted price = %v, want 10.116", got)
	}

	wrapped := NewSpecialOccasion(discounted, "Congrats!")
	if got := wrapped.Price(); !almostEqual(got, 11.616) {
		t.Fatalf("wrapped price = %v, want 11.616", got)
	}

	order := NewOrder(1001, "Alice")
	order.Add(wrapped)
	order.Add(NewSimpleItem("Garlic Bread", 3.00))
	if got := order.Price(); !almostEqual(got, 14.616) {
		t.Errorf("order price = %v, want 14.616", got)
	}
}

func TestDecoratorPrepareDelegatesInsideOut(t *testing.T) {
	food := NewBurger()
	food.AddIngredient(Ingredient{Name: "Bacon", Price: 1.50})

	item := NewSpecialOccasion(NewDiscountCoupon(food, 20), "Get well soon")
	steps := item.Prepare()

	joined := strings.Join(steps, "\n")
	if !strings.Contains(joined, "Preparing Custom Burger") {
		t.Errorf("missing food preparation step:\n%s", joined)
	}

	discountIdx, cardIdx := -1, -1
	for i, step := range steps {
		if strings.Contains(step, "Discount coupon applied") {
			discountIdx = i
		}
		if strings.Contains(step, "Special occasion card") {
			cardIdx = i
		}
	}
	if discountIdx == -1 || cardIdx == -1 || discountIdx > cardIdx {
		t.Errorf("decorator steps out of order: %v", steps)
	}
	if !strings.HasPrefix(steps[0], "Preparing") {
		t.Errorf("inner food must prepare first: %v", steps)
	}
}
