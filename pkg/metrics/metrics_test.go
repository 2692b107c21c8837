package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetrics(reg)

	m.Observe("PIX", OutcomeApproved, decimal.RequireFromString("22.69"))
	m.Observe("PIX", OutcomeDeclined, decimal.RequireFromString("40"))
	m.Observe("Invoice", OutcomeApproved, decimal.Zero)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Attempts.WithLabelValues("PIX", OutcomeApproved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Attempts.WithLabelValues("PIX", OutcomeDeclined)))
	assert.InDelta(t, 22.69, testutil.ToFloat64(m.Amount.WithLabelValues("PIX")), 1e-9)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Amount.WithLabelValues("Invoice")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *CheckoutMetrics
	assert.NotPanics(t, func() { m.Observe("PIX", OutcomeApproved, decimal.NewFromInt(1)) })
}

func TestSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetrics(reg)

	m.Observe("A", OutcomeApproved, decimal.NewFromInt(1))
	m.Observe("B", OutcomeApproved, decimal.NewFromInt(2))
	m.Observe("B", OutcomeDeclined, decimal.NewFromInt(2))
	m.Observe("A", OutcomeEmptyCart, decimal.Zero)

	got, err := Summary(reg)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		OutcomeApproved:  2,
		OutcomeDeclined:  1,
		OutcomeEmptyCart: 1,
	}, got)
}
