package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts order outcomes for Prometheus scraping. It satisfies
// the facade's Recorder interface.
type Metrics struct {
	ordersCompleted prometheus.Counter
	revenueTotal    prometheus.Counter
	ordersFailed    *prometheus.CounterVec
}

// New registers the order counters on a fresh registry and returns the
// recorder together with its scrape handler.
func New() (*Metrics, http.Handler) {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		ordersCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_completed_total",
			Help: "Number of orders that completed the full pipeline.",
		}),
		revenueTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_revenue_total",
			Help: "Total amount charged across completed orders.",
		}),
		ordersFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_failed_total",
			Help: "Number of orders that failed, by reason.",
		}, []string{"reason"}),
	}

	return m, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// OrderCompleted records a successful order and its charged amount.
func (m *Metrics) OrderCompleted(amount float64) {
	m.ordersCompleted.Inc()
	m.revenueTotal.Add(amount)
}

// OrderFailed records a failed order with the given reason label.
func (m *Metrics) OrderFailed(reason string) {
	m.ordersFailed.WithLabelValues(reason).Inc()
}
