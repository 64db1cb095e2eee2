package ordering

import (
	"context"
	"fmt"

	"delicious-bites/internal/ledger"
	"delicious-bites/internal/logger"
	"delicious-bites/internal/menu"
	"delicious-bites/internal/payments"
)

// Delivery statuses reported through notifications.
const (
	StatusPreparing = "Preparing"
	StatusCancelled = "Cancelled"
)

// Failure reasons reported to the outcome recorder.
const (
	ReasonInventoryUnavailable = "inventory_unavailable"
	ReasonPaymentDeclined      = "payment_declined"
)

// InventoryService answers availability questions and tracks reservations.
type InventoryService interface {
	CheckAvailability(item menu.Component) bool
	Reserve(item menu.Component)
	Release(item menu.Component)
}

// DeliveryService schedules couriers. Scheduling has no failure mode; it is
// best-effort from the order's point of view.
type DeliveryService interface {
	ScheduleDelivery(customerName, address string, express bool)
	TrackDelivery(orderID int) string
}

// NotificationService sends customer-facing messages. Sends are best-effort;
// failures never fail the order.
type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, customerName string, orderID int, item menu.Component)
	SendDeliveryUpdate(ctx context.Context, customerName string, orderID int, status string)
}

// Archiver mirrors completed orders to durable storage, best-effort.
type Archiver interface {
	SaveOrder(ctx context.Context, order ledger.Order) error
}

// Recorder observes fulfillment outcomes.
type Recorder interface {
	OrderCompleted(amount float64)
	OrderFailed(reason string)
}

// NopRecorder discards all outcomes.
type NopRecorder struct{}

func (NopRecorder) OrderCompleted(float64) {}
func (NopRecorder) OrderFailed(string)     {}

// Facade sequences inventory, payment, ledger, delivery and notification
// behind one call per order.
type Facade struct {
	inventory InventoryService
	payments  payments.Processor
	delivery  DeliveryService
	notifier  NotificationService
	ledger    *ledger.Ledger
	archive   Archiver
	recorder  Recorder
	log       *logger.Logger
}

// NewFacade wires the facade. archive may be nil when no durable mirror is
// configured; recorder may be nil to discard outcome metrics.
func NewFacade(inventory InventoryService, processor payments.Processor, delivery DeliveryService,
	notifier NotificationService, ldg *ledger.Ledger, archive Archiver, recorder Recorder, log *logger.Logger) *Facade {

	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Facade{
		inventory: inventory,
		payments:  processor,
		delivery:  delivery,
		notifier:  notifier,
		ledger:    ldg,
		archive:   archive,
		recorder:  recorder,
		log:       log,
	}
}

// PlaceCompleteOrder runs one item through the full fulfillment sequence.
// Business failures (stock, payment) come back as false; only a payment
// decline triggers compensation, releasing the reservation taken before it.
// A failed order never reaches the ledger.
func (f *Facade) PlaceCompleteOrder(ctx context.Context, customerName, address string, item menu.Component, express bool) bool {
	requestID := logger.GenerateRequestID()

	f.log.Info("order_processing_started", fmt.Sprintf("Processing complete order for %s", customerName), requestID, map[string]interface{}{
		"customer": customerName,
		"item":     item.Name(),
		"express":  express,
	})

	// Step 1: availability. No side effects yet, so nothing to compensate.
	if !f.inventory.CheckAvailability(item) {
		f.log.Info("order_failed", "Order failed: item not available", requestID, map[string]interface{}{
			"item": item.Name(),
		})
		f.recorder.OrderFailed(ReasonInventoryUnavailable)
		return false
	}

	// Step 2: hold the item.
	f.inventory.Reserve(item)

	// Step 3: charge. On decline, release the hold from step 2 and stop.
	amount := item.Price()
	if !f.payments.ProcessPayment(customerName, amount) {
		f.inventory.Release(item)
		f.log.Info("order_failed", "Order failed: payment declined", requestID, map[string]interface{}{
			"customer": customerName,
			"amount":   amount,
			"method":   f.payments.MethodLabel(),
		})
		f.recorder.OrderFailed(ReasonPaymentDeclined)
		return false
	}

	// Step 4: record the order, then hand the item to the kitchen. The
	// kitchen runs only after payment has cleared.
	order := f.ledger.PlaceOrder(customerName, item, nil)
	if p, ok := item.(menu.Preparer); ok {
		for _, step := range p.Prepare() {
			f.log.Debug("kitchen_step", step, requestID, map[string]interface{}{
				"order_id": order.ID,
			})
		}
	}

	if f.archive != nil {
		if err := f.archive.SaveOrder(ctx, order); err != nil {
			f.log.Error("order_archive_failed", "Failed to archive order", requestID, err, map[string]interface{}{
				"order_id": order.ID,
			})
		}
	}

	// Steps 5-6: delivery and notifications are fire-and-forget.
	f.delivery.ScheduleDelivery(customerName, address, express)
	f.notifier.SendOrderConfirmation(ctx, customerName, order.ID, item)
	f.notifier.SendDeliveryUpdate(ctx, customerName, order.ID, StatusPreparing)

	f.log.Info("order_completed", fmt.Sprintf("Order #%d completed successfully", order.ID), requestID, map[string]interface{}{
		"order_id": order.ID,
		"total":    order.TotalAmount,
	})
	f.recorder.OrderCompleted(order.TotalAmount)
	return true
}

// CancelOrder is the explicit compensating operation: release the hold,
// refund the charge and tell the customer. It is never invoked automatically
// by PlaceCompleteOrder's failure handling.
func (f *Facade) CancelOrder(ctx context.Context, customerName string, orderID int, item menu.Component, amount float64) {
	requestID := logger.GenerateRequestID()

	f.log.Info("order_cancelling", fmt.Sprintf("Cancelling order #%d", orderID), requestID, map[string]interface{}{
		"order_id": orderID,
		"customer": customerName,
	})

	f.inventory.Release(item)
	if !f.payments.Refund(fmt.Sprintf("order-%d", orderID), amount) {
		f.log.Error("refund_failed", "Refund was not accepted", requestID, nil, map[string]interface{}{
			"order_id": orderID,
			"amount":   amount,
		})
	}
	f.notifier.SendDeliveryUpdate(ctx, customerName, orderID, StatusCancelled)
}
