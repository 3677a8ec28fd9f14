package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCartNotFound = errors.New("cart not found")
	ErrNotInCart    = errors.New("product not in cart")
)

type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetCart returns the shopper's cart, or an empty unsaved cart when none
// exists yet. Carts are only persisted on the first mutation.
func (s *Service) GetCart(ctx context.Context, shopperID string) (domain.Cart, error) {
	cart, err := s.repo.Get(ctx, shopperID)
	if errors.Is(err, ErrCartNotFound) {
		return domain.Cart{ShopperID: shopperID}, nil
	}
	return cart, err
}

func (s *Service) AddItem(ctx context.Context, shopperID, productID string, qty int64) (domain.Cart, error) {
	if strings.TrimSpace(productID) == "" || qty < 1 {
		return domain.Cart{}, ErrInvalidInput
	}

	cart, err := s.repo.Get(ctx, shopperID)
	if errors.Is(err, ErrCartNotFound) {
		cart = domain.Cart{ShopperID: shopperID}
	} else if err != nil {
		return domain.Cart{}, err
	}

	cart.Add(productID, qty)
	return s.repo.Upsert(ctx, cart)
}

// SetItemQuantity updates an existing line; quantity 0 removes it. A
// product that is not in the cart is reported as ErrNotInCart, never added.
func (s *Service) SetItemQuantity(ctx context.Context, shopperID, productID string, qty int64) (domain.Cart, error) {
	if strings.TrimSpace(productID) == "" || qty < 0 {
		return domain.Cart{}, ErrInvalidInput
	}

	cart, err := s.repo.Get(ctx, shopperID)
	if errors.Is(err, ErrCartNotFound) {
		return domain.Cart{}, ErrNotInCart
	}
	if err != nil {
		return domain.Cart{}, err
	}

	if !cart.SetQuantity(productID, qty) {
		return domain.Cart{}, ErrNotInCart
	}
	return s.repo.Upsert(ctx, cart)
}

func (s *Service) RemoveItem(ctx context.Context, shopperID, productID string) (domain.Cart, error) {
	cart, err := s.repo.Get(ctx, shopperID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Remove(productID)
	return s.repo.Upsert(ctx, cart)
}

// ReplaceLines rewrites the cart to exactly the given lines. Checkout uses
// it to keep only what could not be fulfilled.
func (s *Service) ReplaceLines(ctx context.Context, shopperID string, lines []domain.LineItem) (domain.Cart, error) {
	cart, err := s.repo.Get(ctx, shopperID)
	if errors.Is(err, ErrCartNotFound) {
		cart = domain.Cart{ShopperID: shopperID}
	} else if err != nil {
		return domain.Cart{}, err
	}

	cart.Items = nil
	for _, ln := range lines {
		if ln.Quantity < 1 {
			return domain.Cart{}, ErrInvalidInput
		}
		cart.Add(ln.ProductID, ln.Quantity)
	}
	return s.repo.Upsert(ctx, cart)
}

func (s *Service) Clear(ctx context.Context, shopperID string) (domain.Cart, error) {
	return s.ReplaceLines(ctx, shopperID, nil)
}

// Count reports the total item quantity, 0 when no cart exists.
func (s *Service) Count(ctx context.Context, shopperID string) (int64, error) {
	cart, err := s.repo.Get(ctx, shopperID)
	if errors.Is(err, ErrCartNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return cart.TotalQuantity(), nil
}
