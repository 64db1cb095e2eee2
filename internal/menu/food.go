package menu

import (
	"fmt"
	"strings"
)

// FoodKind selects one of the food variants.
type FoodKind string

const (
	KindPizza  FoodKind = "pizza"
	KindBurger FoodKind = "burger"
	KindSalad  FoodKind = "salad"
)

// Ingredient is a named, priced add-on for a food.
type Ingredient struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (i Ingredient) String() string {
	return fmt.Sprintf("%s ($%.2f)", i.Name, i.Price)
}

// Food is a priced item with a base price plus an ordered list of ingredients.
// Ingredients are only ever added, never removed.
type Food struct {
	leafNode
	kind        FoodKind
	name        string
	basePrice   float64
	ingredients []Ingredient
}

// NewPizza creates a pizza with no toppings yet.
func NewPizza() *Food {
	return &Food{kind: KindPizza, name: "Custom Pizza", basePrice: 8.99}
}

// NewBurger creates a burger with no toppings yet.
func NewBurger() *Food {
	return &Food{kind: KindBurger, name: "Custom Burger", basePrice: 4.99}
}

// NewSalad creates a salad with no add-ons yet.
func NewSalad() *Food {
	return &Food{kind: KindSalad, name: "Custom Salad", basePrice: 3.99}
}

// AddIngredient appends an ingredient to the food.
func (f *Food) AddIngredient(ing Ingredient) {
	f.ingredients = append(f.ingredients, ing)
}

// Kind reports the food variant.
func (f *Food) Kind() FoodKind {
	return f.kind
}

// BasePrice reports the price before ingredients.
func (f *Food) BasePrice() float64 {
	return f.basePrice
}

// Ingredients returns a copy of the ingredient list.
func (f *Food) Ingredients() []Ingredient {
	out := make([]Ingredient, len(f.ingredients))
	copy(out, f.ingredients)
	return out
}

func (f *Food) Name() string {
	return f.name
}

func (f *Food) Price() float64 {
	total := f.basePrice
	for _, ing := range f.ingredients {
		total += ing.Price
	}
	return total
}

func (f *Food) Render(depth int) string {
	return renderLine(depth, f.name, f.Price())
}

// Prepare returns the kitchen steps for the food, one line per step.
func (f *Food) Prepare() []string {
	steps := []string{fmt.Sprintf("Preparing %s...", f.name)}

	switch f.kind {
	case KindPizza:
		steps = append(steps, "Stretching dough and topping with:")
	case KindBurger:
		steps = append(steps, "Grilling beef patty and assembling with:")
	case KindSalad:
		steps = append(steps, "Mixing fresh ingredients:")
	}

	if len(f.ingredients) == 0 {
		switch f.kind {
		case KindPizza:
			steps = append(steps, "- Plain margherita base")
		case KindBurger:
			steps = append(steps, "- Bun only (no toppings)")
		case KindSalad:
			steps = append(steps, "- Plain lettuce base")
		}
	} else {
		for _, ing := range f.ingredients {
			steps = append(steps, "- "+ing.Name)
		}
	}

	switch f.kind {
	case KindPizza:
		steps = append(steps, "Baking in the wood-fired oven and slicing!")
	case KindBurger:
		steps = append(steps, "Wrapping and serving hot!")
	case KindSalad:
		steps = append(steps, "Tossing and serving chilled!")
	}

	return steps
}

// DetailedDescription renders the food with its ingredient breakdown.
func (f *Food) DetailedDescription() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - Base: $%.2f\n", f.name, f.basePrice)
	if len(f.ingredients) > 0 {
		b.WriteString("Ingredients:\n")
		for _, ing := range f.ingredients {
			fmt.Fprintf(&b, "  - %s\n", ing)
		}
	}
	fmt.Fprintf(&b, "Total Price: $%.2f", f.Price())
	return b.String()
}
