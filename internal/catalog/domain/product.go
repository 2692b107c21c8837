package domain

import (
	"github.com/dwikikusuma/shoping-checkout/pkg/validation"
	"github.com/shopspring/decimal"
)

// Product is immutable once built; read it through its accessors.
type Product struct {
	id        string
	name      string
	unitPrice decimal.Decimal
}

func NewProduct(id, name string, unitPrice decimal.Decimal) (Product, error) {
	if unitPrice.IsNegative() {
		return Product{}, validation.New("unit price", unitPrice.String(), "must not be negative")
	}

	return Product{
		id:        id,
		name:      name,
		unitPrice: unitPrice,
	}, nil
}

func (p Product) ID() string                 { return p.id }
func (p Product) Name() string               { return p.name }
func (p Product) UnitPrice() decimal.Decimal { return p.unitPrice }
