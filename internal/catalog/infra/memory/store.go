package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

// Store implements app.ProductRepo with in-memory storage. One mutex
// guards every stock counter, which makes Reserve trivially atomic.
type Store struct {
	mu       sync.Mutex
	products map[string]*domain.Product
}

func NewStore() *Store {
	return &Store{
		products: make(map[string]*domain.Product),
	}
}

func (s *Store) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	stored := p
	s.products[p.ID] = &stored
	return p, nil
}

func (s *Store) Get(_ context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return *p, nil
}

func (s *Store) List(_ context.Context, limit int, cursor string) ([]domain.Product, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		if cursor == "" || id > cursor {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	if len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.products[id])
	}

	nextCursor := ""
	if len(out) == limit && len(out) > 0 {
		nextCursor = out[len(out)-1].ID
	}
	return out, nextCursor, nil
}

func (s *Store) Reserve(_ context.Context, productID string, qty int64) (domain.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return domain.Money{}, app.ErrNotFound
	}
	if p.Stock < qty {
		return domain.Money{}, app.ErrInsufficientStock
	}

	p.Stock -= qty
	p.UpdatedAt = time.Now()
	return p.Price, nil
}
