package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

// Product is the stock view of a catalog entry. Stock only ever decreases
// here: a granted reservation is a completed sale and restocking happens
// elsewhere.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
