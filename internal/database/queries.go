package database

// Archive queries
const (
	InsertArchivedOrderSQL = `
		INSERT INTO archived_orders (order_id, customer_name, food_name, delivery_fee, total_amount, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (order_id) DO NOTHING`

	CountArchivedOrdersSQL = `
		SELECT COUNT(*) FROM archived_orders`

	SumArchivedRevenueSQL = `
		SELECT COALESCE(SUM(total_amount), 0) FROM archived_orders`

	GetArchivedOrderSQL = `
		SELECT order_id, customer_name, food_name, delivery_fee, total_amount, placed_at
		FROM archived_orders WHERE order_id = $1`
)
