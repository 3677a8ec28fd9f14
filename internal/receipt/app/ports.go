package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/receipt/domain"
)

type ReceiptRepo interface {
	// Insert persists a new receipt, returning ErrCodeExists when the code
	// collides with an existing one. Any other failure surfaces untouched.
	Insert(ctx context.Context, r domain.Receipt) error
	GetByCode(ctx context.Context, code string) (domain.Receipt, error)
	ListByPurchaser(ctx context.Context, purchaser string) ([]domain.Receipt, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Receipt, error)
}
