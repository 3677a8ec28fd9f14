package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartServiceStore struct {
	svc *cartapp.Service
}

func NewCartServiceStore(svc *cartapp.Service) *CartServiceStore {
	return &CartServiceStore{svc: svc}
}

func (a *CartServiceStore) Lines(ctx context.Context, shopperID string) ([]checkoutapp.CartLine, error) {
	cart, err := a.svc.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	lines := make([]checkoutapp.CartLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, checkoutapp.CartLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}

func (a *CartServiceStore) ReplaceLines(ctx context.Context, shopperID string, lines []checkoutapp.CartLine) error {
	items := make([]cartdomain.LineItem, 0, len(lines))
	for _, ln := range lines {
		items = append(items, cartdomain.LineItem{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
		})
	}

	_, err := a.svc.ReplaceLines(ctx, shopperID, items)
	return err
}
