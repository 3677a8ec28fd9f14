package adapter

import (
	"context"
	"errors"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
)

type LedgerReserver struct {
	svc *catalogapp.Service
}

func NewLedgerReserver(svc *catalogapp.Service) *LedgerReserver {
	return &LedgerReserver{svc: svc}
}

// Reserve translates the ledger's recoverable rejections (unknown product,
// short stock) into reservation results; everything else is a fault.
func (a *LedgerReserver) Reserve(ctx context.Context, productID string, qty int64) (checkoutapp.Reservation, error) {
	price, err := a.svc.Reserve(ctx, productID, qty)
	switch {
	case err == nil:
		return checkoutapp.Reservation{
			Granted:   true,
			UnitPrice: checkoutdomain.Money{Currency: price.Currency, Amount: price.Amount},
		}, nil
	case errors.Is(err, catalogapp.ErrNotFound):
		return checkoutapp.Reservation{Reason: "product not found"}, nil
	case errors.Is(err, catalogapp.ErrInsufficientStock):
		return checkoutapp.Reservation{Reason: "insufficient stock"}, nil
	default:
		return checkoutapp.Reservation{}, err
	}
}
