package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delicious-bites/internal/config"
	"delicious-bites/internal/database"
	"delicious-bites/internal/ledger"
	"delicious-bites/internal/logger"
	"delicious-bites/internal/menu"
	"delicious-bites/internal/messaging"
	"delicious-bites/internal/metrics"
	"delicious-bites/internal/ordering"
	"delicious-bites/internal/payments"
	"delicious-bites/internal/platform"
	"delicious-bites/internal/services/notification"
	"delicious-bites/internal/services/orderapi"
)

func main() {
	// Parse command line flags
	var (
		mode          = flag.String("mode", "", "Service mode (order-service, notification-subscriber)")
		port          = flag.Int("port", 3000, "HTTP port")
		paymentMethod = flag.String("payment-method", "stripe", "Payment processor (stripe, paypal, cash)")
		platformName  = flag.String("platform", "", "Delivery platform to publish the menu to (ubereats, doordash, glovo)")
		prefetch      = flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	)
	flag.Parse()

	// Validate required mode flag
	if *mode == "" {
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", *mode), requestID, map[string]interface{}{
		"mode":       *mode,
		"port":       *port,
		"restaurant": cfg.Restaurant.Name,
	})

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	// Route to appropriate service
	switch *mode {
	case "order-service":
		if err := runOrderService(ctx, cfg, log, *port, *paymentMethod, *platformName); err != nil {
			log.Error("service_failed", "Order service failed", requestID, err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		if err := runNotificationSubscriber(ctx, cfg, log, *prefetch); err != nil {
			log.Error("service_failed", "Notification subscriber failed", requestID, err, nil)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// runOrderService runs the HTTP order service
func runOrderService(ctx context.Context, cfg *config.Config, log *logger.Logger, port int, paymentMethod, platformName string) error {
	requestID := logger.GenerateRequestID()

	// Initialize database for the order archive
	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare archive schema: %w", err)
	}

	// Initialize messaging for customer notifications
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

	publisher := messaging.NewPublisher(conn, log)

	// Assemble the fulfillment pipeline
	processor, err := payments.NewProcessor(paymentMethod, log)
	if err != nil {
		return fmt.Errorf("failed to initialize payment processor: %w", err)
	}

	recorder, metricsHandler := metrics.New()

	ldg := ledger.New(cfg)
	facade := ordering.NewFacade(
		ordering.NewStockInventory(log),
		processor,
		ordering.NewCourierDelivery(log),
		ordering.NewAMQPNotifier(publisher, log),
		ldg,
		database.NewArchive(db),
		recorder,
		log,
	)

	// Optionally publish the menu to a third-party delivery platform
	if platformName != "" {
		if err := publishMenu(platformName, log); err != nil {
			return err
		}
	}

	handler := orderapi.NewHandler(facade, ldg, metricsHandler, log)

	// Setup HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler.SetupRoutes(),
	}

	// Start HTTP server in goroutine
	go func() {
		log.Info("service_started", fmt.Sprintf("Order Service started on port %d", port), requestID, map[string]interface{}{
			"port":           port,
			"payment_method": processor.MethodLabel(),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// publishMenu pushes the base menu to an external delivery platform
func publishMenu(platformName string, log *logger.Logger) error {
	target, err := platform.NewPlatform(platformName, log)
	if err != nil {
		return fmt.Errorf("failed to initialize delivery platform: %w", err)
	}

	items := []menu.Component{
		menu.NewPizza(),
		menu.NewBurger(),
		menu.NewSalad(),
	}
	for _, item := range items {
		if !target.PublishMenuItem(item) {
			return fmt.Errorf("platform %s rejected menu item %s", target.PlatformName(), item.Name())
		}
	}

	log.Info("menu_published", fmt.Sprintf("Menu published to %s", target.PlatformName()), "", map[string]interface{}{
		"items": len(items),
	})
	return nil
}

// runNotificationSubscriber runs the notification subscriber service
func runNotificationSubscriber(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log, messaging.NotificationsQueue, "notification-subscriber", prefetch)
	subscriber := notification.NewSubscriber(consumer, log)

	return subscriber.Start(ctx)
}
