package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"delicious-bites/internal/ledger"
	"delicious-bites/internal/logger"
	"delicious-bites/internal/menu"
	"delicious-bites/internal/ordering"
)

// Handler handles HTTP requests for the order service
type Handler struct {
	facade  *ordering.Facade
	ledger  *ledger.Ledger
	metrics http.Handler
	logger  *logger.Logger
}

// NewHandler creates a new order handler
func NewHandler(facade *ordering.Facade, ldg *ledger.Ledger, metricsHandler http.Handler, log *logger.Logger) *Handler {
	return &Handler{
		facade:  facade,
		ledger:  ldg,
		metrics: metricsHandler,
		logger:  log,
	}
}

// CreateOrder handles POST /api/orders requests
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Header.Get("Content-Type") != "application/json" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Content-Type must be application/json", requestID)
		return
	}

	h.logger.Debug("order_received", "Received order creation request", requestID, map[string]interface{}{
		"content_length": r.ContentLength,
		"remote_addr":    r.RemoteAddr,
	})

	var req CreateOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	if err := ValidateOrderRequest(&req); err != nil {
		h.logger.Error("validation_failed", "Request validation failed", requestID, err, map[string]interface{}{
			"customer_name": req.CustomerName,
			"food_type":     req.FoodType,
		})
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	item, err := buildItem(&req)
	if err != nil {
		h.logger.Error("order_build_failed", "Failed to build order item", requestID, err, map[string]interface{}{
			"food_type": req.FoodType,
		})
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	placed := h.facade.PlaceCompleteOrder(ctx, req.CustomerName, req.Address, item, req.Express)

	w.Header().Set("Content-Type", "application/json")

	if !placed {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(CreateOrderResponse{
			Status: "failed",
			Reason: "order could not be completed",
		})
		return
	}

	response := CreateOrderResponse{
		Status:   "placed",
		ItemName: item.Name(),
	}
	if order, ok := h.latestOrderFor(req.CustomerName); ok {
		response.OrderID = order.ID
		response.TotalAmount = order.TotalAmount
	}

	h.logger.Debug("order_created", "Order created successfully", requestID, map[string]interface{}{
		"order_id":     response.OrderID,
		"total_amount": response.TotalAmount,
	})

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", requestID, err, nil)
	}
}

// latestOrderFor returns the most recent ledger record for a customer.
func (h *Handler) latestOrderFor(customerName string) (ledger.Order, bool) {
	orders := h.ledger.Orders()
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].CustomerName == customerName {
			return orders[i], true
		}
	}
	return ledger.Order{}, false
}

// GetStats handles GET /api/orders/stats requests
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(StatsResponse{
		TotalOrders:  h.ledger.TotalOrders(),
		TotalRevenue: h.ledger.TotalRevenue(),
	})
}

// HealthCheck handles GET /health requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "order-service",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// writeErrorResponse writes an error response in JSON format
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// SetupRoutes sets up the HTTP routes
func (h *Handler) SetupRoutes() *mux.Router {
	router := mux.NewRouter()
	router.Use(h.loggingMiddleware)

	router.HandleFunc("/api/orders", h.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/orders/stats", h.GetStats).Methods(http.MethodGet)
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics).Methods(http.MethodGet)
	}

	return router
}

// loggingMiddleware logs every request with its duration and status
func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		h.logger.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.Header.Get("User-Agent"),
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	})
}

// buildItem assembles the food and its pricing wrappers from the request.
func buildItem(req *CreateOrderRequest) (menu.Component, error) {
	food, err := menu.NewFood(req.FoodType)
	if err != nil {
		return nil, err
	}

	builder := menu.NewFoodBuilder(food)
	for _, ing := range req.Ingredients {
		builder.Add(ing.Name, ing.Price)
	}

	var item menu.Component = builder.Build()
	for _, dec := range req.Decorators {
		switch dec.Kind {
		case "discount":
			item = menu.NewDiscountCoupon(item, float64(dec.Percent))
		case "express":
			item = menu.NewExpressDelivery(item)
		case "loyalty":
			item = menu.NewLoyaltyPoints(item)
		case "occasion":
			item = menu.NewSpecialOccasion(item, dec.Message)
		}
	}

	return item, nil
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
