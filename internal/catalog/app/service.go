package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, name string, unitPrice decimal.Decimal) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, ErrInvalidInput
	}

	p, err := domain.NewProduct("", name, unitPrice)
	if err != nil {
		return domain.Product{}, err
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Seed is a name/price pair used to stock the catalog at startup.
type Seed struct {
	Name  string
	Price string
}

// DemoCatalog is the fixed three-item catalog offered by the shop.
var DemoCatalog = []Seed{
	{Name: "Café 250g", Price: "16.90"},
	{Name: "Leite 1L", Price: "5.79"},
	{Name: "Biscoito", Price: "4.50"},
}

func (s *Service) SeedProducts(ctx context.Context, seeds []Seed) error {
	for _, sd := range seeds {
		price, err := decimal.NewFromString(sd.Price)
		if err != nil {
			return ErrInvalidInput
		}
		if _, err := s.CreateProduct(ctx, sd.Name, price); err != nil {
			return err
		}
	}
	return nil
}
