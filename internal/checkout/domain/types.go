package domain

import (
	"errors"
	"fmt"
	"time"
)

type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// Line is a granted cart line with the unit price captured when its stock
// was reserved.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

type Receipt struct {
	Code      string    `json:"code"`
	Purchaser string    `json:"purchaser"`
	Amount    Money     `json:"amount"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
}

// Outcome is the result of a checkout: the issued receipt plus the product
// ids whose reservation was rejected and which stayed in the cart.
type Outcome struct {
	Receipt     Receipt  `json:"receipt"`
	Unfulfilled []string `json:"unfulfilled,omitempty"`
}

func AmountOf(lines []Line) int64 {
	var total int64
	for _, ln := range lines {
		total += ln.Quantity * ln.UnitPrice.Amount
	}
	return total
}

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNothingFulfillable = errors.New("no cart line could be fulfilled")
)

// CartWriteError reports that the cart rewrite failed after the receipt was
// already committed. The receipt is authoritative; the stale cart needs
// reconciliation, not reversal.
type CartWriteError struct {
	Receipt Receipt
	Err     error
}

func (e *CartWriteError) Error() string {
	return fmt.Sprintf("receipt %s issued but cart rewrite failed: %v", e.Receipt.Code, e.Err)
}

func (e *CartWriteError) Unwrap() error {
	return e.Err
}
