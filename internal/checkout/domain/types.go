package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPaid = "PAID"

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type Receipt struct {
	ID     string
	Lines  []ReceiptLine
	Total  decimal.Decimal
	Method string
	Status string
	// Reference is set only when the method issues one (e.g. an invoice line).
	Reference string
	Message   string
	IssuedAt  time.Time
}

type Decline struct {
	Method string
	Amount decimal.Decimal
	Reason string
}

// Result carries either a Receipt (Approved) or a Decline.
type Result struct {
	Approved bool
	Receipt  Receipt
	Decline  Decline
}
