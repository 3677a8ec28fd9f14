package adapter

import (
	"context"

	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	receiptapp "github.com/dwikikusuma/storefront/internal/receipt/app"
	receiptdomain "github.com/dwikikusuma/storefront/internal/receipt/domain"
)

type ReceiptServiceIssuer struct {
	svc *receiptapp.Service
}

func NewReceiptServiceIssuer(svc *receiptapp.Service) *ReceiptServiceIssuer {
	return &ReceiptServiceIssuer{svc: svc}
}

func (a *ReceiptServiceIssuer) Issue(ctx context.Context, purchaser string, amount checkoutdomain.Money, lines []checkoutdomain.Line) (checkoutdomain.Receipt, error) {
	receiptLines := make([]receiptdomain.Line, 0, len(lines))
	for _, ln := range lines {
		receiptLines = append(receiptLines, receiptdomain.Line{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			UnitPrice: receiptdomain.Money{Currency: ln.UnitPrice.Currency, Amount: ln.UnitPrice.Amount},
		})
	}

	rec, err := a.svc.Issue(ctx, purchaser, receiptdomain.Money{Currency: amount.Currency, Amount: amount.Amount}, receiptLines)
	if err != nil {
		return checkoutdomain.Receipt{}, err
	}

	return toCheckoutReceipt(rec), nil
}

func toCheckoutReceipt(rec receiptdomain.Receipt) checkoutdomain.Receipt {
	lines := make([]checkoutdomain.Line, 0, len(rec.Lines))
	for _, ln := range rec.Lines {
		lines = append(lines, checkoutdomain.Line{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			UnitPrice: checkoutdomain.Money{Currency: ln.UnitPrice.Currency, Amount: ln.UnitPrice.Amount},
		})
	}

	return checkoutdomain.Receipt{
		Code:      rec.Code,
		Purchaser: rec.Purchaser,
		Amount:    checkoutdomain.Money{Currency: rec.Amount.Currency, Amount: rec.Amount.Amount},
		Lines:     lines,
		CreatedAt: rec.CreatedAt,
	}
}
