package cache

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

type CartCache interface {
	Get(ctx context.Context, shopperID string) (domain.Cart, error)
	Set(ctx context.Context, shopperID string, cart domain.Cart) error
	Delete(ctx context.Context, shopperID string) error
}

var ErrCacheMiss = errors.New("cache miss")
