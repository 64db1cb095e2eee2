package menu

import (
	"fmt"
	"strings"
)

// Meal is a fixed combination of dishes assembled by a MealBuilder. Unset
// slots stay empty and render as "None".
type Meal struct {
	MainDish string
	SideDish string
	Drink    string
	Dessert  string
}

func (m Meal) String() string {
	orNone := func(s string) string {
		if s == "" {
			return "None"
		}
		return s
	}

	var b strings.Builder
	b.WriteString("=== Custom Meal ===\n")
	fmt.Fprintf(&b, "Main Dish: %s\n", orNone(m.MainDish))
	fmt.Fprintf(&b, "Side Dish: %s\n", orNone(m.SideDish))
	fmt.Fprintf(&b, "Drink: %s\n", orNone(m.Drink))
	fmt.Fprintf(&b, "Dessert: %s", orNone(m.Dessert))
	return b.String()
}

// MealBuilder assembles meals step by step. Calls chain.
type MealBuilder struct {
	meal Meal
}

// NewMealBuilder creates an empty builder.
func NewMealBuilder() *MealBuilder {
	return &MealBuilder{}
}

func (b *MealBuilder) MainDish(dish string) *MealBuilder {
	b.meal.MainDish = dish
	return b
}

func (b *MealBuilder) SideDish(dish string) *MealBuilder {
	b.meal.SideDish = dish
	return b
}

func (b *MealBuilder) Drink(drink string) *MealBuilder {
	b.meal.Drink = drink
	return b
}

func (b *MealBuilder) Dessert(dessert string) *MealBuilder {
	b.meal.Dessert = dessert
	return b
}

// Reset clears all slots.
func (b *MealBuilder) Reset() *MealBuilder {
	b.meal = Meal{}
	return b
}

// Build returns the assembled meal.
func (b *MealBuilder) Build() Meal {
	return b.meal
}

// MealDirector constructs the preset meal configurations from the menu.
type MealDirector struct {
	builder *MealBuilder
}

// NewMealDirector creates a director driving the given builder.
func NewMealDirector(builder *MealBuilder) *MealDirector {
	return &MealDirector{builder: builder}
}

// StandardMeal is the default combination around a main dish.
func (d *MealDirector) StandardMeal(mainDish string) Meal {
	return d.builder.
		Reset().
		MainDish(mainDish).
		SideDish("French Fries").
		Drink("Coca-Cola").
		Dessert("Ice Cream").
		Build()
}

// HealthyMeal skips the dessert and keeps the sides light.
func (d *MealDirector) HealthyMeal(mainDish string) Meal {
	return d.builder.
		Reset().
		MainDish(mainDish).
		SideDish("Salad").
		Drink("Water").
		Build()
}

// KidsMeal is the child-friendly combination.
func (d *MealDirector) KidsMeal(mainDish string) Meal {
	return d.builder.
		Reset().
		MainDish(mainDish).
		SideDish("Onion Rings").
		Drink("Orange Juice").
		Dessert("Brownie").
		Build()
}

// BudgetMeal keeps only the essentials.
func (d *MealDirector) BudgetMeal(mainDish string) Meal {
	return d.builder.
		Reset().
		MainDish(mainDish).
		Drink("Water").
		Build()
}
