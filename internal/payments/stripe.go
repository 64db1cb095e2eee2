package payments

import (
	"github.com/google/uuid"

	"delicious-bites/internal/logger"
)

// stripeGateway mimics the vendor SDK surface: amounts in cents, opaque
// customer and charge ids.
type stripeGateway struct {
	log *logger.Logger
}

func (g *stripeGateway) Charge(customerID string, amountCents int) bool {
	if amountCents <= 0 {
		g.log.Debug("stripe_charge_rejected", "Charge rejected: non-positive amount", "", map[string]interface{}{
			"customer_id":  customerID,
			"amount_cents": amountCents,
		})
		return false
	}

	g.log.Info("stripe_charge", "Charge accepted", "", map[string]interface{}{
		"customer_id":  customerID,
		"amount_cents": amountCents,
		"charge_id":    "ch_" + uuid.NewString()[:8],
	})
	return true
}

func (g *stripeGateway) CreateRefund(chargeID string, amountCents int) bool {
	if amountCents <= 0 {
		return false
	}

	g.log.Info("stripe_refund", "Refund created", "", map[string]interface{}{
		"charge_id":    chargeID,
		"amount_cents": amountCents,
	})
	return true
}

// StripeAdapter adapts the Stripe gateway to the Processor capability.
type StripeAdapter struct {
	gateway *stripeGateway
}

// NewStripeAdapter creates a Stripe-backed processor.
func NewStripeAdapter(log *logger.Logger) *StripeAdapter {
	return &StripeAdapter{gateway: &stripeGateway{log: log}}
}

func (a *StripeAdapter) ProcessPayment(customerName string, amount float64) bool {
	customerID := "cus_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(customerName)).String()[:8]
	return a.gateway.Charge(customerID, toCents(amount))
}

func (a *StripeAdapter) Refund(referenceID string, amount float64) bool {
	return a.gateway.CreateRefund(referenceID, toCents(amount))
}

func (a *StripeAdapter) MethodLabel() string {
	return "Stripe"
}

// toCents converts a dollar amount to whole cents, truncating fractions the
// way the vendor API expects.
func toCents(amount float64) int {
	return int(amount * 100)
}
