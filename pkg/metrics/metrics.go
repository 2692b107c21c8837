package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const (
	OutcomeApproved  = "approved"
	OutcomeDeclined  = "declined"
	OutcomeEmptyCart = "empty_cart"
)

const attemptsName = "shop_checkout_attempts_total"

// CheckoutMetrics counts checkout attempts. A nil *CheckoutMetrics records nothing.
type CheckoutMetrics struct {
	Attempts *prometheus.CounterVec
	Amount   *prometheus.CounterVec
}

func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Subsystem: "checkout",
		Name:      "attempts_total",
		Help:      "Checkout attempts by payment method and outcome.",
	}, []string{"method", "outcome"})
	amount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Subsystem: "checkout",
		Name:      "amount_total",
		Help:      "Sum of approved checkout amounts.",
	}, []string{"method"})

	reg.MustRegister(attempts, amount)
	return &CheckoutMetrics{Attempts: attempts, Amount: amount}
}

func (m *CheckoutMetrics) Observe(method, outcome string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.Attempts.WithLabelValues(method, outcome).Inc()
	if outcome == OutcomeApproved {
		m.Amount.WithLabelValues(method).Add(amount.InexactFloat64())
	}
}

// Summary totals checkout attempts per outcome across all methods.
func Summary(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	out := map[string]float64{
		OutcomeApproved:  0,
		OutcomeDeclined:  0,
		OutcomeEmptyCart: 0,
	}
	for _, mf := range families {
		if mf.GetName() != attemptsName {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "outcome" {
					out[lp.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	return out, nil
}
