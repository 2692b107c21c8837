package app

import (
	"context"

	"github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	// List returns products in insertion order.
	List(ctx context.Context) ([]domain.Product, error)
}
