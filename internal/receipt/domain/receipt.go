package domain

import "time"

type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// Line is one purchased (product, quantity) pair with the unit price
// captured at the moment the stock was reserved.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

// Receipt is the immutable record of a completed, possibly partial,
// purchase. It is never updated or deleted once persisted.
type Receipt struct {
	Code      string    `json:"code"`
	Purchaser string    `json:"purchaser"`
	Amount    Money     `json:"amount"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
}

// AmountOf derives the total from the lines. A receipt's Amount must always
// equal this sum.
func AmountOf(lines []Line) int64 {
	var total int64
	for _, ln := range lines {
		total += ln.Quantity * ln.UnitPrice.Amount
	}
	return total
}
