package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
)

// Repo is an in-memory cart store for tests and brokerless local runs.
type Repo struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewRepo() *Repo {
	return &Repo{carts: make(map[string]domain.Cart)}
}

func (r *Repo) Get(_ context.Context, shopperID string) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[shopperID]
	if !ok {
		return domain.Cart{}, app.ErrCartNotFound
	}
	return cart, nil
}

func (r *Repo) Upsert(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if cart.ID == "" {
		cart.ID = uuid.NewString()
	}
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	r.carts[cart.ShopperID] = cart
	return cart, nil
}
