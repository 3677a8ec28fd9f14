package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// CachedRepo decorates a CartRepo with a read-through cache. Cache failures
// degrade to the underlying repo; they are logged, never surfaced.
type CachedRepo struct {
	repo  app.CartRepo
	cache CartCache
	log   *slog.Logger
}

func NewCachedRepo(repo app.CartRepo, cache CartCache, log *slog.Logger) *CachedRepo {
	return &CachedRepo{repo: repo, cache: cache, log: log}
}

func (r *CachedRepo) Get(ctx context.Context, shopperID string) (domain.Cart, error) {
	cart, err := r.cache.Get(ctx, shopperID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.log.Warn("cart cache read failed", slog.Any("err", err))
	}

	cart, err = r.repo.Get(ctx, shopperID)
	if err != nil {
		return domain.Cart{}, err
	}

	if err := r.cache.Set(ctx, shopperID, cart); err != nil {
		r.log.Warn("cart cache fill failed", slog.Any("err", err))
	}
	return cart, nil
}

func (r *CachedRepo) Upsert(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	stored, err := r.repo.Upsert(ctx, cart)
	if err != nil {
		return domain.Cart{}, err
	}

	// Invalidate rather than write: the next read refills from the repo.
	if err := r.cache.Delete(ctx, cart.ShopperID); err != nil {
		r.log.Warn("cart cache invalidation failed", slog.Any("err", err))
	}
	return stored, nil
}
