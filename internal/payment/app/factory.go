package app

import (
	"errors"
	"fmt"

	"github.com/dwikikusuma/shoping-checkout/internal/payment/domain"
	"github.com/shopspring/decimal"
)

var ErrUnknownKind = errors.New("unknown payment method")

type Options struct {
	InstantTransferBalance decimal.Decimal
	CreditLineLimit        decimal.Decimal
}

// Factory builds a fresh Method for every checkout, so capacity consumed
// by one attempt is not visible to the next.
type Factory struct {
	opts Options
}

func NewFactory(opts Options) *Factory {
	return &Factory{opts: opts}
}

func (f *Factory) Options() Options {
	return f.opts
}

func (f *Factory) New(kind domain.Kind) (domain.Method, error) {
	switch kind {
	case domain.KindInstantTransfer:
		return domain.NewInstantTransfer(f.opts.InstantTransferBalance), nil
	case domain.KindCreditLine:
		return domain.NewCreditLine(f.opts.CreditLineLimit), nil
	case domain.KindDeferredInvoice:
		return domain.NewDeferredInvoice(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
