package domain

import (
	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/validation"
	"github.com/shopspring/decimal"
)

// Line pairs a product with a quantity that is always > 0.
type Line struct {
	product  catalog.Product
	quantity int
}

func NewLine(product catalog.Product, quantity int) (Line, error) {
	if quantity <= 0 {
		return Line{}, validation.New("quantity", quantity, "must be greater than zero")
	}
	return Line{product: product, quantity: quantity}, nil
}

func (l Line) Product() catalog.Product { return l.product }
func (l Line) Quantity() int            { return l.quantity }

func (l Line) Subtotal() decimal.Decimal {
	return l.product.UnitPrice().Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Cart holds lines in insertion order. Adding the same product twice
// produces two lines; nothing is merged.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) AddItem(product catalog.Product, quantity int) error {
	line, err := NewLine(product, quantity)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy; mutating it does not touch the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
