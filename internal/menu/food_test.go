package menu

import (
	"errors"
	"strings"
	"testing"
)

func TestFoodVariants(t *testing.T) {
	tests := []struct {
		name      string
		food      *Food
		wantName  string
		wantPrice float64
	}{
		{"pizza", NewPizza(), "Custom Pizza", 8.99},
		{"burger", NewBurger(), "Custom Burger", 4.99},
		{"salad", NewSalad(), "Custom Salad", 3.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.food.Name(); got != tt.wantName {
				t.Errorf("Name = %q, want %q", got, tt.wantName)
			}
			if got := tt.food.Price(); !almostEqual(got, tt.wantPrice) {
				t.Errorf("Price = %v, want %v", got, tt.wantPrice)
			}
		})
	}
}

func TestFoodPriceIncludesIngredients(t *testing.T) {
	food := NewSalad()
	food.AddIngredient(Ingredient{Name: "Feta Cheese", Price: 1.50})
	food.AddIngredient(Ingredient{Name: "Grilled Chicken", Price: 2.50})

	if got := food.Price(); !almostEqual(got, 7.99) {
		t.Errorf("Price = %v, want 7.99", got)
	}
	if got := len(food.Ingredients()); got != 2 {
		t.Errorf("Ingredients length = %d, want 2", got)
	}
}

func TestNewFood(t *testing.T) {
	tests := []struct {
		kind    string
		want    FoodKind
		wantErr bool
	}{
		{kind: "pizza", want: KindPizza},
		{kind: "Burger", want: KindBurger},
		{kind: " salad ", want: KindSalad},
		{kind: "sushi", wantErr: true},
		{kind: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			food, err := NewFood(tt.kind)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFoodType) {
					t.Fatalf("error = %v, want ErrUnknownFoodType", err)
				}
				if food != nil {
					t.Fatalf("rejected kind must not return a partial object")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFood returned error: %v", err)
			}
			if food.Kind() != tt.want {
				t.Errorf("Kind = %q, want %q", food.Kind(), tt.want)
			}
		})
	}
}

func TestIngredientsForCatalog(t *testing.T) {
	for _, kind := range []FoodKind{KindPizza, KindBurger, KindSalad} {
		if got := len(IngredientsFor(kind)); got != 9 {
			t.Errorf("IngredientsFor(%s) length = %d, want 9", kind, got)
		}
	}
	if IngredientsFor(FoodKind("sushi")) != nil {
		t.Errorf("unknown kind must have no catalog")
	}
}

func TestFoodBuilderChaining(t *testing.T) {
	food := NewFoodBuilder(NewPizza()).
		Add("Mozzarella Cheese", 1.50).
		Add("Tomato Sauce", 0.75).
		Build()

	if got := food.Price(); !almostEqual(got, 11.24) {
		t.Errorf("built price = %v, want 11.24", got)
	}

	builder := NewFoodBuilder(food)
	fresh := builder.Reset().Build()
	if len(fresh.Ingredients()) != 0 {
		t.Errorf("Reset must start over with a bare food")
	}
	if fresh.Kind() != KindPizza {
		t.Errorf("Reset must keep the food kind, got %q", fresh.Kind())
	}
}

func TestFoodPrepareSteps(t *testing.T) {
	food := NewBurger()
	steps := food.Prepare()
	if !strings.Contains(strings.Join(steps, "\n"), "Bun only (no toppings)") {
		t.Errorf("bare burger must note missing toppings: %v", steps)
	}

	food.AddIngredient(Ingredient{Name: "Bacon", Price: 1.50})
	steps = food.Prepare()
	joined := strings.Join(steps, "\n")
	if !strings.Contains(joined, "- Bacon") {
		t.Errorf("ingredient missing from steps: %v", steps)
	}
	if strings.Contains(joined, "Bun only") {
		t.Errorf("topping placeholder must disappear once ingredients exist: %v", steps)
	}
}

func TestFoodDetailedDescription(t *testing.T) {
	food := NewPizza()
	food.AddIngredient(Ingredient{Name: "Basil", Price: 0.50})

	desc := food.DetailedDescription()
	if !strings.Contains(desc, "Base: $8.99") {
		t.Errorf("description missing base price:\n%s", desc)
	}
	if !strings.Contains(desc, "Basil ($0.50)") {
		t.Errorf("description missing ingredient:\n%s", desc)
	}
	if !strings.Contains(desc, "Total Price: $9.49") {
		t.Errorf("description missing total:\n%s", desc)
	}
}
