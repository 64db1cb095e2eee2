package notification

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"delicious-bites/internal/logger"
	"delicious-bites/internal/messaging"
)

// Subscriber handles notification messages
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger

	// Graceful shutdown
	shutdown chan os.Signal
	done     chan bool
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(consumer *messaging.Consumer, logger *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   logger,
		shutdown: make(chan os.Signal, 1),
		done:     make(chan bool, 1),
	}
}

// Start starts the notification subscriber
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()

	// Set up graceful shutdown
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	// Start message consumption
	go func() {
		if err := s.consumer.StartConsuming(ctx, s.handleNotification); err != nil {
			s.logger.Error("consumer_failed", "Notification consumer failed", requestID, err, nil)
		}
		s.done <- true
	}()

	// Wait for shutdown signal or consumer to finish
	select {
	case <-s.shutdown:
		s.logger.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		return s.gracefulShutdown(requestID)
	case <-s.done:
		return nil
	}
}

// handleNotification processes incoming customer notifications
func (s *Subscriber) handleNotification(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	notification, err := messaging.ParseNotification(body)
	if err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse notification message", requestID, err, nil)
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	s.logger.Debug("notification_received", "Received customer notification", requestID, map[string]interface{}{
		"kind":     notification.Kind,
		"order_id": notification.OrderID,
		"status":   notification.Status,
	})

	s.displayNotification(notification)

	return nil
}

// displayNotification displays a human-readable notification to console
func (s *Subscriber) displayNotification(notification *messaging.Notification) {
	message := formatNotification(notification)

	// Print to console (stdout)
	fmt.Println(message)

	// Also log as structured data
	s.logger.Info("notification_displayed", "Notification displayed to user", "", map[string]interface{}{
		"kind":          notification.Kind,
		"order_id":      notification.OrderID,
		"customer_name": notification.CustomerName,
		"status":        notification.Status,
		"timestamp":     notification.Timestamp.Format("2006-01-02 15:04:05"),
	})
}

// formatNotification creates a human-readable notification message
func formatNotification(notification *messaging.Notification) string {
	timestamp := notification.Timestamp.Format("2006-01-02 15:04:05")

	switch notification.Kind {
	case messaging.KindConfirmation:
		return fmt.Sprintf(
			"🎉 [%s] Order #%d confirmed for %s: %s ($%.2f). Thank you for your business!",
			timestamp,
			notification.OrderID,
			notification.CustomerName,
			notification.ItemName,
			notification.Amount,
		)
	case messaging.KindStatus:
		switch notification.Status {
		case "Preparing":
			return fmt.Sprintf(
				"🍳 [%s] Order #%d for %s is now being prepared in the kitchen.",
				timestamp,
				notification.OrderID,
				notification.CustomerName,
			)
		case "Cancelled":
			return fmt.Sprintf(
				"❌ [%s] Order #%d for %s has been cancelled.",
				timestamp,
				notification.OrderID,
				notification.CustomerName,
			)
		}
	}

	return fmt.Sprintf(
		"📋 [%s] Order #%d for %s: %s.",
		timestamp,
		notification.OrderID,
		notification.CustomerName,
		notification.Status,
	)
}

// gracefulShutdown handles graceful shutdown of the subscriber
func (s *Subscriber) gracefulShutdown(requestID string) error {
	s.logger.Info("graceful_shutdown", "Starting graceful shutdown", requestID, nil)

	if s.consumer != nil {
		s.consumer.Close()
	}

	s.logger.Info("graceful_shutdown", "Graceful shutdown completed", requestID, nil)
	return nil
}
