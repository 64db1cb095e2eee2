package payments

// Processor is the payment capability consumed by the fulfillment facade.
// Amounts are in dollars and always non-negative from well-behaved callers;
// implementations must decline amounts at or below zero.
type Processor interface {
	ProcessPayment(customerName string, amount float64) bool
	Refund(referenceID string, amount float64) bool
	MethodLabel() string
}
