package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFoodType is returned when a food kind selector is not recognized.
var ErrUnknownFoodType = errors.New("unknown food type")

// NewFood creates the food variant named by kind. The match is
// case-insensitive. Unknown kinds are rejected without a partial object.
func NewFood(kind string) (*Food, error) {
	switch FoodKind(strings.ToLower(strings.TrimSpace(kind))) {
	case KindPizza:
		return NewPizza(), nil
	case KindBurger:
		return NewBurger(), nil
	case KindSalad:
		return NewSalad(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFoodType, kind)
	}
}

// IngredientsFor returns the static ingredient catalog for a food kind.
func IngredientsFor(kind FoodKind) []Ingredient {
	switch kind {
	case KindPizza:
		return []Ingredient{
			{Name: "Mozzarella Cheese", Price: 1.50},
			{Name: "Tomato Sauce", Price: 0.75},
			{Name: "Pepperoni", Price: 2.00},
			{Name: "Mushrooms", Price: 1.25},
			{Name: "Bell Peppers", Price: 1.00},
			{Name: "Onions", Price: 0.75},
			{Name: "Olives", Price: 1.00},
			{Name: "Basil", Price: 0.50},
			{Name: "Extra Cheese", Price: 1.75},
		}
	case KindBurger:
		return []Ingredient{
			{Name: "Beef Patty", Price: 2.50},
			{Name: "Cheese Slice", Price: 1.00},
			{Name: "Lettuce", Price: 0.50},
			{Name: "Tomato", Price: 0.50},
			{Name: "Onion", Price: 0.40},
			{Name: "Pickles", Price: 0.40},
			{Name: "Bacon", Price: 1.50},
			{Name: "Avocado", Price: 1.75},
			{Name: "Special Sauce", Price: 0.75},
		}
	case KindSalad:
		return []Ingredient{
			{Name: "Lettuce Mix", Price: 1.00},
			{Name: "Cherry Tomatoes", Price: 1.25},
			{Name: "Cucumber", Price: 0.75},
			{Name: "Carrots", Price: 0.60},
			{Name: "Feta Cheese", Price: 1.50},
			{Name: "Grilled Chicken", Price: 2.50},
			{Name: "Croutons", Price: 0.75},
			{Name: "Caesar Dressing", Price: 0.80},
			{Name: "Parmesan Cheese", Price: 1.25},
		}
	default:
		return nil
	}
}
