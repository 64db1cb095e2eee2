package ordering

import (
	"context"

	"delicious-bites/internal/logger"
	"delicious-bites/internal/menu"
	"delicious-bites/internal/messaging"
)

// LogNotifier writes customer notifications to the structured log. It is the
// in-process NotificationService used when no broker is configured.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendOrderConfirmation(ctx context.Context, customerName string, orderID int, item menu.Component) {
	n.log.Info("order_confirmation_sent", "Order confirmation sent", "", map[string]interface{}{
		"customer": customerName,
		"order_id": orderID,
		"item":     item.Name(),
	})
}

func (n *LogNotifier) SendDeliveryUpdate(ctx context.Context, customerName string, orderID int, status string) {
	n.log.Info("delivery_update_sent", "Delivery update sent", "", map[string]interface{}{
		"customer": customerName,
		"order_id": orderID,
		"status":   status,
	})
}

// AMQPNotifier publishes customer notifications to the notifications fanout
// exchange. Publish failures are logged and dropped; notification delivery
// is best-effort and never fails an order.
type AMQPNotifier struct {
	publisher *messaging.Publisher
	log       *logger.Logger
}

// NewAMQPNotifier creates a broker-backed notifier.
func NewAMQPNotifier(publisher *messaging.Publisher, log *logger.Logger) *AMQPNotifier {
	return &AMQPNotifier{publisher: publisher, log: log}
}

func (n *AMQPNotifier) SendOrderConfirmation(ctx context.Context, customerName string, orderID int, item menu.Component) {
	msg := messaging.NewConfirmation(orderID, customerName, item.Name(), item.Price())
	if err := n.publisher.PublishNotification(ctx, msg); err != nil {
		n.log.Error("notification_publish_failed", "Failed to publish order confirmation", "", err, map[string]interface{}{
			"order_id": orderID,
		})
	}
}

func (n *AMQPNotifier) SendDeliveryUpdate(ctx context.Context, customerName string, orderID int, status string) {
	msg := messaging.NewStatusUpdate(orderID, customerName, status)
	if err := n.publisher.PublishNotification(ctx, msg); err != nil {
		n.log.Error("notification_publish_failed", "Failed to publish delivery update", "", err, map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
	}
}
