package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records outcomes of the checkout flow.
type CheckoutMetrics struct {
	placed     prometheus.Counter
	failures   *prometheus.CounterVec
	allocation prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders that completed checkout.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Checkout attempts that did not produce an order.",
	}, []string{"reason"})
	allocation := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_id_allocation_seconds",
		Help:    "Duration of order id allocation in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(placed, failures, allocation)
	return &CheckoutMetrics{
		placed:     placed,
		failures:   failures,
		allocation: allocation,
	}
}

// IncPlaced increments the placed-orders counter.
func (c *CheckoutMetrics) IncPlaced() {
	if c == nil || c.placed == nil {
		return
	}
	c.placed.Inc()
}

// IncFailure increments the failure counter for the given reason.
func (c *CheckoutMetrics) IncFailure(reason string) {
	if c == nil || c.failures == nil {
		return
	}
	c.failures.WithLabelValues(normalizeLabel(reason)).Inc()
}

// ObserveAllocation records the duration of an order id allocation.
func (c *CheckoutMetrics) ObserveAllocation(duration time.Duration) {
	if c == nil || c.allocation == nil {
		return
	}
	c.allocation.Observe(duration.Seconds())
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
