package payments

import (
	"testing"

	"delicious-bites/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New("payments-test")
}

func TestProcessorsDeclineNonPositiveAmounts(t *testing.T) {
	log := testLogger()

	processors := []Processor{
		NewStripeAdapter(log),
		NewPayPalAdapter(log),
		NewCashAdapter(log),
	}

	for _, p := range processors {
		t.Run(p.MethodLabel(), func(t *testing.T) {
			if p.ProcessPayment("Alice", 0) {
				t.Errorf("zero amount must decline")
			}
			if p.ProcessPayment("Alice", -5.00) {
				t.Errorf("negative amount must decline")
			}
			if !p.ProcessPayment("Alice", 12.50) {
				t.Errorf("positive amount must succeed")
			}
		})
	}
}

func TestProcessorsRefund(t *testing.T) {
	log := testLogger()

	processors := []Processor{
		NewStripeAdapter(log),
		NewPayPalAdapter(log),
		NewCashAdapter(log),
	}

	for _, p := range processors {
		t.Run(p.MethodLabel(), func(t *testing.T) {
			if !p.Refund("order-1001", 12.50) {
				t.Errorf("positive refund must succeed")
			}
			if p.Refund("order-1001", 0) {
				t.Errorf("zero refund must fail")
			}
		})
	}
}

func TestNewProcessor(t *testing.T) {
	log := testLogger()

	tests := []struct {
		method    string
		wantLabel string
		wantErr   bool
	}{
		{method: "stripe", wantLabel: "Stripe"},
		{method: "PayPal", wantLabel: "PayPal"},
		{method: " cash ", wantLabel: "Cash"},
		{method: "bitcoin", wantErr: true},
		{method: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			p, err := NewProcessor(tt.method, log)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProcessor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if p.MethodLabel() != tt.wantLabel {
				t.Errorf("MethodLabel = %q, want %q", p.MethodLabel(), tt.wantLabel)
			}
		})
	}
}
