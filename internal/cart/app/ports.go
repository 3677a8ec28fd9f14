package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

type CartRepo interface {
	// Get returns ErrCartNotFound when the shopper has no cart yet.
	Get(ctx context.Context, shopperID string) (domain.Cart, error)
	// Upsert stores the whole cart document keyed by shopper.
	Upsert(ctx context.Context, cart domain.Cart) (domain.Cart, error)
}
