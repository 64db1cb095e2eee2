package payments

import (
	"strings"

	"delicious-bites/internal/logger"
)

// paypalAPI mimics the vendor surface: dollar amounts and account emails.
type paypalAPI struct {
	log *logger.Logger
}

func (p *paypalAPI) SendMoney(accountEmail string, amount float64) bool {
	if amount <= 0 {
		p.log.Debug("paypal_transfer_rejected", "Transfer rejected: non-positive amount", "", map[string]interface{}{
			"account": accountEmail,
			"amount":  amount,
		})
		return false
	}

	p.log.Info("paypal_transfer", "Transfer accepted", "", map[string]interface{}{
		"account": accountEmail,
		"amount":  amount,
	})
	return true
}

func (p *paypalAPI) IssueRefund(transferRef string, amount float64) bool {
	if amount <= 0 {
		return false
	}

	p.log.Info("paypal_refund", "Refund issued", "", map[string]interface{}{
		"transfer_ref": transferRef,
		"amount":       amount,
	})
	return true
}

// PayPalAdapter adapts the PayPal API to the Processor capability.
type PayPalAdapter struct {
	api *paypalAPI
}

// NewPayPalAdapter creates a PayPal-backed processor.
func NewPayPalAdapter(log *logger.Logger) *PayPalAdapter {
	return &PayPalAdapter{api: &paypalAPI{log: log}}
}

func (a *PayPalAdapter) ProcessPayment(customerName string, amount float64) bool {
	account := strings.ToLower(strings.ReplaceAll(customerName, " ", ".")) + "@example.com"
	return a.api.SendMoney(account, amount)
}

func (a *PayPalAdapter) Refund(referenceID string, amount float64) bool {
	return a.api.IssueRefund(referenceID, amount)
}

func (a *PayPalAdapter) MethodLabel() string {
	return "PayPal"
}
