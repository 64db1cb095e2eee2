package messaging

import "time"

// Notification kinds.
const (
	KindConfirmation = "confirmation"
	KindStatus       = "status"
)

// Notification is the wire format fanned out to notification subscribers.
type Notification struct {
	Kind         string    `json:"kind"`
	OrderID      int       `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	ItemName     string    `json:"item_name,omitempty"`
	Amount       float64   `json:"amount,omitempty"`
	Status       string    `json:"status,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewConfirmation creates an order-confirmation notification.
func NewConfirmation(orderID int, customerName, itemName string, amount float64) *Notification {
	return &Notification{
		Kind:         KindConfirmation,
		OrderID:      orderID,
		CustomerName: customerName,
		ItemName:     itemName,
		Amount:       amount,
		Timestamp:    time.Now().UTC(),
	}
}

// NewStatusUpdate creates a delivery-status notification.
func NewStatusUpdate(orderID int, customerName, status string) *Notification {
	return &Notification{
		Kind:         KindStatus,
		OrderID:      orderID,
		CustomerName: customerName,
		Status:       status,
		Timestamp:    time.Now().UTC(),
	}
}

// ParseNotification decodes a notification from its wire form.
func ParseNotification(body []byte) (*Notification, error) {
	var notification Notification
	if err := ParseMessage(body, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}
