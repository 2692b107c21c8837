package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Method is the closed set of payment variants. The unexported method keeps
// implementations inside this package.
type Method interface {
	DisplayName() string
	// Authorize reports whether amount is covered. Approval may consume
	// the method's own capacity; a decline changes nothing.
	Authorize(amount decimal.Decimal) bool

	method()
}

type Kind int

const (
	KindInstantTransfer Kind = iota + 1
	KindCreditLine
	KindDeferredInvoice
)

func (k Kind) String() string {
	switch k {
	case KindInstantTransfer:
		return "instant_transfer"
	case KindCreditLine:
		return "credit_line"
	case KindDeferredInvoice:
		return "deferred_invoice"
	default:
		return "unknown"
	}
}

// Kinds lists every variant in menu order.
func Kinds() []Kind {
	return []Kind{KindInstantTransfer, KindCreditLine, KindDeferredInvoice}
}

func clamp(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

type InstantTransfer struct {
	balance decimal.Decimal
}

// NewInstantTransfer clamps a negative balance to zero.
func NewInstantTransfer(balance decimal.Decimal) *InstantTransfer {
	return &InstantTransfer{balance: clamp(balance)}
}

func (m *InstantTransfer) DisplayName() string      { return "Instant Transfer" }
func (m *InstantTransfer) Balance() decimal.Decimal { return m.balance }
func (m *InstantTransfer) ProcessingLabel() string  { return "Validating transfer key" }
func (m *InstantTransfer) method()                  {}

func (m *InstantTransfer) Authorize(amount decimal.Decimal) bool {
	if amount.IsNegative() || amount.GreaterThan(m.balance) {
		return false
	}
	m.balance = m.balance.Sub(amount)
	return true
}

func (m *InstantTransfer) OutcomeMessage(approved bool) string {
	if approved {
		return "Instant transfer approved!"
	}
	return "Insufficient transfer balance."
}

type CreditLine struct {
	limit decimal.Decimal
}

// NewCreditLine clamps a negative limit to zero.
func NewCreditLine(limit decimal.Decimal) *CreditLine {
	return &CreditLine{limit: clamp(limit)}
}

func (m *CreditLine) DisplayName() string     { return "Credit Line" }
func (m *CreditLine) Limit() decimal.Decimal  { return m.limit }
func (m *CreditLine) ProcessingLabel() string { return "Contacting card issuer" }
func (m *CreditLine) method()                 {}

func (m *CreditLine) Authorize(amount decimal.Decimal) bool {
	if amount.IsNegative() || amount.GreaterThan(m.limit) {
		return false
	}
	m.limit = m.limit.Sub(amount)
	return true
}

func (m *CreditLine) OutcomeMessage(approved bool) string {
	if approved {
		return "Credit transaction approved!"
	}
	return "Insufficient credit limit."
}

// InvoiceReference is a fixed sample payment line, not a generated code.
const InvoiceReference = "34191.79001 01043.510047 91020.150008 8 123400000"

// InvoiceDueDays is how long the issued invoice stays payable.
const InvoiceDueDays = 2

// DeferredInvoice always approves; it has no capacity to consume.
type DeferredInvoice struct {
	last decimal.Decimal
}

func NewDeferredInvoice() *DeferredInvoice {
	return &DeferredInvoice{}
}

func (m *DeferredInvoice) DisplayName() string         { return "Deferred Invoice" }
func (m *DeferredInvoice) Reference() string           { return InvoiceReference }
func (m *DeferredInvoice) ProcessingLabel() string     { return "Generating invoice" }
func (m *DeferredInvoice) LastAmount() decimal.Decimal { return m.last }
func (m *DeferredInvoice) method()                     {}

func (m *DeferredInvoice) Authorize(amount decimal.Decimal) bool {
	m.last = amount
	return true
}

func (m *DeferredInvoice) OutcomeMessage(bool) string {
	return fmt.Sprintf("Invoice issued (payable within %d days).", InvoiceDueDays)
}
