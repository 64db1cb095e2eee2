package orderapi

// DecoratorSpec describes one pricing add-on to wrap around the food.
// Kind is one of "discount", "express", "loyalty" or "occasion".
type DecoratorSpec struct {
	Kind    string `json:"kind"`
	Percent int    `json:"percent,omitempty"`
	Message string `json:"message,omitempty"`
}

// IngredientSpec is one topping line for the kitchen.
type IngredientSpec struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateOrderRequest is the POST /api/orders request body.
type CreateOrderRequest struct {
	CustomerName string           `json:"customer_name"`
	Address      string           `json:"address"`
	FoodType     string           `json:"food_type"`
	Ingredients  []IngredientSpec `json:"ingredients,omitempty"`
	Decorators   []DecoratorSpec  `json:"decorators,omitempty"`
	Express      bool             `json:"express"`
}

// CreateOrderResponse is returned once the pipeline has run.
type CreateOrderResponse struct {
	Status      string  `json:"status"`
	OrderID     int     `json:"order_id,omitempty"`
	ItemName    string  `json:"item_name,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// StatsResponse is the GET /api/orders/stats response body.
type StatsResponse struct {
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}
