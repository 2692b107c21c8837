package app

import (
	"testing"

	"github.com/dwikikusuma/shoping-checkout/internal/payment/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory() *Factory {
	return NewFactory(Options{
		InstantTransferBalance: decimal.RequireFromString("30.00"),
		CreditLineLimit:        decimal.RequireFromString("1000.00"),
	})
}

func TestFactoryBuildsConfiguredVariants(t *testing.T) {
	f := newFactory()

	m, err := f.New(domain.KindInstantTransfer)
	require.NoError(t, err)
	it, ok := m.(*domain.InstantTransfer)
	require.True(t, ok)
	assert.Equal(t, "30.00", it.Balance().StringFixed(2))

	m, err = f.New(domain.KindCreditLine)
	require.NoError(t, err)
	cl, ok := m.(*domain.CreditLine)
	require.True(t, ok)
	assert.Equal(t, "1000.00", cl.Limit().StringFixed(2))

	m, err = f.New(domain.KindDeferredInvoice)
	require.NoError(t, err)
	assert.IsType(t, &domain.DeferredInvoice{}, m)
}

func TestFactoryReturnsFreshInstances(t *testing.T) {
	f := newFactory()

	first, err := f.New(domain.KindInstantTransfer)
	require.NoError(t, err)
	require.True(t, first.Authorize(decimal.RequireFromString("30.00")))

	second, err := f.New(domain.KindInstantTransfer)
	require.NoError(t, err)
	assert.Equal(t, "30.00", second.(*domain.InstantTransfer).Balance().StringFixed(2))
}

func TestFactoryUnknownKind(t *testing.T) {
	_, err := newFactory().New(domain.Kind(42))
	assert.ErrorIs(t, err, ErrUnknownKind)
}
