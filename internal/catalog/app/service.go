package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, name, desc, currency string, amount, stock int64) (domain.Product, error) {
	name = strings.TrimSpace(name)
	currency = strings.TrimSpace(currency)

	if name == "" || currency == "" || amount < 0 || stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	p := domain.Product{
		Name:        name,
		Description: desc,
		Price: domain.Money{
			Currency: currency,
			Amount:   amount,
		},
		Stock: stock,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, limit int, cursor string) ([]domain.Product, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, limit, cursor)
}

// Reserve is the inventory ledger operation: an uninterruptible
// check-and-decrement of the stock counter. Unknown products and short
// stock are recoverable per-item failures, not faults.
func (s *Service) Reserve(ctx context.Context, productID string, qty int64) (domain.Money, error) {
	if strings.TrimSpace(productID) == "" || qty < 1 {
		return domain.Money{}, ErrInvalidInput
	}
	return s.repo.Reserve(ctx, productID, qty)
}
