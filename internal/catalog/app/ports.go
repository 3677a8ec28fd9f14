package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, limit int, cursor string) ([]domain.Product, string, error)

	// Reserve decrements stock by qty iff stock >= qty, as one atomic step,
	// and returns the unit price captured at that instant.
	Reserve(ctx context.Context, productID string, qty int64) (domain.Money, error)
}
