package app

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/receipt/domain"
	"github.com/dwikikusuma/storefront/pkg/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("receipt not found")
	ErrCodeExists   = errors.New("receipt code already exists")

	// ErrCodeSpaceExhausted means maxCodeAttempts fresh codes all collided.
	// With 2^32 random suffixes per millisecond that indicates a broken
	// store or clock, not bad luck.
	ErrCodeSpaceExhausted = errors.New("receipt code attempts exhausted")
)

const maxCodeAttempts = 8

type Service struct {
	repo ReceiptRepo
	m    *metrics.CheckoutMetrics
}

func NewService(repo ReceiptRepo, m *metrics.CheckoutMetrics) *Service {
	return &Service{repo: repo, m: m}
}

// Issue persists a new immutable receipt. The amount must equal the sum of
// quantity x unit price over the lines, and a receipt never has zero lines.
// Only a code collision is retried, always with a freshly generated code.
func (s *Service) Issue(ctx context.Context, purchaser string, amount domain.Money, lines []domain.Line) (domain.Receipt, error) {
	if strings.TrimSpace(purchaser) == "" || len(lines) == 0 {
		return domain.Receipt{}, ErrInvalidInput
	}
	for i, ln := range lines {
		if ln.ProductID == "" || ln.Quantity < 1 || ln.UnitPrice.Amount < 0 {
			return domain.Receipt{}, fmt.Errorf("line %d: %w", i, ErrInvalidInput)
		}
	}
	if amount.Amount != domain.AmountOf(lines) {
		return domain.Receipt{}, fmt.Errorf("amount does not match line totals: %w", ErrInvalidInput)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		r := domain.Receipt{
			Code:      generateCode(),
			Purchaser: purchaser,
			Amount:    amount,
			Lines:     lines,
			CreatedAt: time.Now().UTC(),
		}

		err := s.repo.Insert(ctx, r)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrCodeExists) {
			return domain.Receipt{}, err
		}
		s.m.IncCodeRetries()
	}

	return domain.Receipt{}, ErrCodeSpaceExhausted
}

func (s *Service) GetByCode(ctx context.Context, code string) (domain.Receipt, error) {
	if strings.TrimSpace(code) == "" {
		return domain.Receipt{}, ErrInvalidInput
	}
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) ListByPurchaser(ctx context.Context, purchaser string) ([]domain.Receipt, error) {
	if strings.TrimSpace(purchaser) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPurchaser(ctx, purchaser)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Receipt, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return s.repo.ListRecent(ctx, limit)
}

// generateCode combines the current milliseconds in base36 with a random
// suffix: legible, roughly sortable, and collisions are astronomically
// unlikely without being impossible.
func generateCode() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		binary.BigEndian.PutUint32(buf, mrand.Uint32())
	}

	return fmt.Sprintf("TICKET-%s-%X", ts, buf)
}
