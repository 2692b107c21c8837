package app

import (
	"context"

	cart "github.com/dwikikusuma/shoping-checkout/internal/cart/domain"
	"github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	"github.com/shopspring/decimal"
)

// PaymentMethod is all checkout needs from a payment variant.
type PaymentMethod interface {
	DisplayName() string
	Authorize(amount decimal.Decimal) bool
}

type CartReader interface {
	Total() decimal.Decimal
	IsEmpty() bool
	Lines() []cart.Line
}

// Presenter renders checkout progress. Processing may block for a cosmetic
// delay and should return early when ctx is done.
type Presenter interface {
	CheckoutStarted(method string, total decimal.Decimal)
	Processing(ctx context.Context, label string)
	Approved(receipt domain.Receipt)
	Declined(decline domain.Decline)
}

// Optional capabilities a PaymentMethod may expose.
type (
	processingLabeler interface{ ProcessingLabel() string }
	outcomeMessenger  interface{ OutcomeMessage(approved bool) string }
	referenceIssuer   interface{ Reference() string }
)

type nopPresenter struct{}

func (nopPresenter) CheckoutStarted(string, decimal.Decimal) {}
func (nopPresenter) Processing(context.Context, string)      {}
func (nopPresenter) Approved(domain.Receipt)                 {}
func (nopPresenter) Declined(domain.Decline)                 {}
