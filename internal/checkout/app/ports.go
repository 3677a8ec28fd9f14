package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

type CartLine struct {
	ProductID string
	Quantity  int64
}

type CartStore interface {
	// Lines returns the shopper's pending lines; an absent cart is empty.
	Lines(ctx context.Context, shopperID string) ([]CartLine, error)
	// ReplaceLines rewrites the cart to exactly the given lines.
	ReplaceLines(ctx context.Context, shopperID string, lines []CartLine) error
}

// Reservation is the per-line outcome of the inventory ledger. A rejection
// is a result, not an error; the error return is reserved for
// infrastructure faults.
type Reservation struct {
	Granted   bool
	UnitPrice domain.Money
	Reason    string
}

type StockReserver interface {
	Reserve(ctx context.Context, productID string, qty int64) (Reservation, error)
}

type ReceiptIssuer interface {
	Issue(ctx context.Context, purchaser string, amount domain.Money, lines []domain.Line) (domain.Receipt, error)
}

// Notifier delivers the purchase confirmation. It is invoked best-effort;
// its failure never affects the checkout result.
type Notifier interface {
	NotifyPurchase(ctx context.Context, receipt domain.Receipt, recipient string) error
}
