package payments

import (
	"fmt"
	"strings"

	"delicious-bites/internal/logger"
)

// NewProcessor selects a processor by method label. Unknown methods are
// rejected without a partial object.
func NewProcessor(method string, log *logger.Logger) (Processor, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "stripe":
		return NewStripeAdapter(log), nil
	case "paypal":
		return NewPayPalAdapter(log), nil
	case "cash":
		return NewCashAdapter(log), nil
	default:
		return nil, fmt.Errorf("unknown payment method: %q", method)
	}
}
