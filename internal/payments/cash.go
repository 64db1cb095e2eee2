package payments

import "delicious-bites/internal/logger"

// CashAdapter settles payments on delivery. There is no external gateway;
// positive amounts always succeed.
type CashAdapter struct {
	log *logger.Logger
}

// NewCashAdapter creates a cash-on-delivery processor.
func NewCashAdapter(log *logger.Logger) *CashAdapter {
	return &CashAdapter{log: log}
}

func (a *CashAdapter) ProcessPayment(customerName string, amount float64) bool {
	if amount <= 0 {
		return false
	}

	a.log.Info("cash_payment", "Cash payment recorded for delivery", "", map[string]interface{}{
		"customer": customerName,
		"amount":   amount,
	})
	return true
}

func (a *CashAdapter) Refund(referenceID string, amount float64) bool {
	if amount <= 0 {
		return false
	}

	a.log.Info("cash_refund", "Cash refund recorded", "", map[string]interface{}{
		"reference": referenceID,
		"amount":    amount,
	})
	return true
}

func (a *CashAdapter) MethodLabel() string {
	return "Cash"
}
