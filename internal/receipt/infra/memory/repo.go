package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dwikikusuma/storefront/internal/receipt/app"
	"github.com/dwikikusuma/storefront/internal/receipt/domain"
)

// Repo keeps receipts in memory, enforcing code uniqueness like the
// database does.
type Repo struct {
	mu       sync.RWMutex
	receipts map[string]domain.Receipt
}

func NewRepo() *Repo {
	return &Repo{receipts: make(map[string]domain.Receipt)}
}

func (r *Repo) Insert(_ context.Context, rec domain.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.receipts[rec.Code]; exists {
		return app.ErrCodeExists
	}
	r.receipts[rec.Code] = rec
	return nil
}

func (r *Repo) GetByCode(_ context.Context, code string) (domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.receipts[code]
	if !ok {
		return domain.Receipt{}, app.ErrNotFound
	}
	return rec, nil
}

func (r *Repo) ListByPurchaser(_ context.Context, purchaser string) ([]domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Receipt
	for _, rec := range r.receipts {
		if rec.Purchaser == purchaser {
			out = append(out, rec)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *Repo) ListRecent(_ context.Context, limit int) ([]domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Receipt, 0, len(r.receipts))
	for _, rec := range r.receipts {
		out = append(out, rec)
	}
	sortNewestFirst(out)

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortNewestFirst(rs []domain.Receipt) {
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}
