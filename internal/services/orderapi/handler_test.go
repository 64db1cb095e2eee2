package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delicious-bites/internal/ledger"
	"delicious-bites/internal/logger"
	"delicious-bites/internal/menu"
	"delicious-bites/internal/ordering"
)

type stubInventory struct{ available bool }

func (s *stubInventory) CheckAvailability(menu.Component) bool { return s.available }
func (s *stubInventory) Reserve(menu.Component)                {}
func (s *stubInventory) Release(menu.Component)                {}

type stubPayments struct{ approve bool }

func (s *stubPayments) ProcessPayment(string, float64) bool { return s.approve }
func (s *stubPayments) Refund(string, float64) bool         { return true }
func (s *stubPayments) MethodLabel() string                 { return "Stub" }

type stubDelivery struct{}

func (stubDelivery) ScheduleDelivery(string, string, bool) {}
func (stubDelivery) TrackDelivery(int) string              { return "testing" }

type stubNotifier struct{}

func (stubNotifier) SendOrderConfirmation(context.Context, string, int, menu.Component) {}
func (stubNotifier) SendDeliveryUpdate(context.Context, string, int, string)            {}

func newTestHandler(t *testing.T, available, approve bool) (*Handler, *ledger.Ledger) {
	t.Helper()

	log := logger.New("orderapi-test")
	ldg := ledger.New(ledger.StaticFee(3.50))
	facade := ordering.NewFacade(
		&stubInventory{available: available},
		&stubPayments{approve: approve},
		stubDelivery{}, stubNotifier{}, ldg, nil, nil, log)

	return NewHandler(facade, ldg, nil, log), ldg
}

func postOrder(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderSuccess(t *testing.T) {
	h, ldg := newTestHandler(t, true, true)

	body := `{
		"customer_name": "John Doe",
		"address": "123 Main St",
		"food_type": "pizza",
		"ingredients": [{"name": "Mozzarella", "price": 2.00}],
		"decorators": [{"kind": "express"}],
		"express": true
	}`

	rec := postOrder(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp CreateOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if resp.Status != "placed" {
		t.Errorf("status = %q, want placed", resp.Status)
	}
	if resp.OrderID != 1001 {
		t.Errorf("order_id = %d, want 1001", resp.OrderID)
	}
	// pizza 8.99 + mozzarella 2.00 + express 5.00 + delivery fee 3.50
	if want := 19.49; resp.TotalAmount < want-1e-9 || resp.TotalAmount > want+1e-9 {
		t.Errorf("total_amount = %v, want %v", resp.TotalAmount, want)
	}
	if ldg.TotalOrders() != 1 {
		t.Errorf("ledger records = %d, want 1", ldg.TotalOrders())
	}
}

func TestCreateOrderValidationFailure(t *testing.T) {
	h, _ := newTestHandler(t, true, true)

	rec := postOrder(t, h, `{"customer_name": "", "address": "123 Main St", "food_type": "pizza"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateOrderRejectsUnknownFields(t *testing.T) {
	h, _ := newTestHandler(t, true, true)

	rec := postOrder(t, h, `{"customer_name": "John", "address": "123 Main St", "food_type": "pizza", "tip": 5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateOrderPipelineFailure(t *testing.T) {
	h, ldg := newTestHandler(t, true, false)

	rec := postOrder(t, h, `{"customer_name": "John Doe", "address": "123 Main St", "food_type": "burger"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if ldg.TotalOrders() != 0 {
		t.Errorf("failed order must not reach the ledger, records = %d", ldg.TotalOrders())
	}
}

func TestCreateOrderRequiresJSONContentType(t *testing.T) {
	h, _ := newTestHandler(t, true, true)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetStats(t *testing.T) {
	h, _ := newTestHandler(t, true, true)

	postOrder(t, h, `{"customer_name": "John Doe", "address": "123 Main St", "food_type": "salad"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/stats", nil)
	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var stats StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if stats.TotalOrders != 1 {
		t.Errorf("total_orders = %d, want 1", stats.TotalOrders)
	}
	// salad 3.99 + delivery fee 3.50
	if want := 7.49; stats.TotalRevenue < want-1e-9 || stats.TotalRevenue > want+1e-9 {
		t.Errorf("total_revenue = %v, want %v", stats.TotalRevenue, want)
	}
}

func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandler(t, true, true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
