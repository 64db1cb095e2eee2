package database

import (
	"context"
	"fmt"
	"time"

	"delicious-bites/internal/ledger"
)

// ArchivedOrder is a ledger record as stored in PostgreSQL.
type ArchivedOrder struct {
	OrderID      int       `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	FoodName     string    `json:"food_name"`
	DeliveryFee  float64   `json:"delivery_fee"`
	TotalAmount  float64   `json:"total_amount"`
	PlacedAt     time.Time `json:"placed_at"`
}

// Archive mirrors completed ledger records into PostgreSQL. The in-memory
// ledger stays authoritative; the archive is a durable copy for reporting.
type Archive struct {
	db *DB
}

// NewArchive creates an order archive backed by the given connection.
func NewArchive(db *DB) *Archive {
	return &Archive{db: db}
}

// SaveOrder writes a placed order to the archive. Replays of the same
// order ID are ignored.
func (a *Archive) SaveOrder(ctx context.Context, order ledger.Order) error {
	foodName := ""
	if order.Food != nil {
		foodName = order.Food.Name()
	}

	err := a.db.Exec(ctx, InsertArchivedOrderSQL,
		order.ID, order.CustomerName, foodName,
		order.DeliveryFee, order.TotalAmount, order.PlacedAt)
	if err != nil {
		return fmt.Errorf("failed to archive order %d: %w", order.ID, err)
	}

	return nil
}

// TotalOrders returns the number of archived orders.
func (a *Archive) TotalOrders(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRow(ctx, CountArchivedOrdersSQL).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count archived orders: %w", err)
	}
	return count, nil
}

// TotalRevenue returns the summed total of all archived orders.
func (a *Archive) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := a.db.QueryRow(ctx, SumArchivedRevenueSQL).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to sum archived revenue: %w", err)
	}
	return revenue, nil
}

// GetOrder fetches one archived order by its ledger ID.
func (a *Archive) GetOrder(ctx context.Context, orderID int) (*ArchivedOrder, error) {
	var order ArchivedOrder
	err := a.db.QueryRow(ctx, GetArchivedOrderSQL, orderID).Scan(
		&order.OrderID, &order.CustomerName, &order.FoodName,
		&order.DeliveryFee, &order.TotalAmount, &order.PlacedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get archived order %d: %w", orderID, err)
	}
	return &order, nil
}
