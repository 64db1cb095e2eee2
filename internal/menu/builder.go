package menu

// FoodBuilder assembles a food ingredient by ingredient. Calls chain.
type FoodBuilder struct {
	food *Food
}

// NewFoodBuilder starts building on top of the given food.
func NewFoodBuilder(food *Food) *FoodBuilder {
	return &FoodBuilder{food: food}
}

// AddIngredient appends an ingredient and returns the builder for chaining.
func (b *FoodBuilder) AddIngredient(ing Ingredient) *FoodBuilder {
	b.food.AddIngredient(ing)
	return b
}

// Add is a convenience for AddIngredient with a name and price.
func (b *FoodBuilder) Add(name string, price float64) *FoodBuilder {
	return b.AddIngredient(Ingredient{Name: name, Price: price})
}

// Build returns the completed food.
func (b *FoodBuilder) Build() *Food {
	return b.food
}

// Reset replaces the food under construction with a fresh one of the same kind.
func (b *FoodBuilder) Reset() *FoodBuilder {
	switch b.food.kind {
	case KindPizza:
		b.food = NewPizza()
	case KindBurger:
		b.food = NewBurger()
	case KindSalad:
		b.food = NewSalad()
	}
	return b
}
