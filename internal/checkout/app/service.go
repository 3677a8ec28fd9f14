package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	cart     CartStore
	stock    StockReserver
	receipts ReceiptIssuer
	notifier Notifier

	log *slog.Logger
	m   *metrics.CheckoutMetrics

	maxConcurrent int
}

func NewService(cart CartStore, stock StockReserver, receipts ReceiptIssuer, notifier Notifier, log *slog.Logger, m *metrics.CheckoutMetrics, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		stock:         stock,
		receipts:      receipts,
		notifier:      notifier,
		log:           log,
		m:             m,
		maxConcurrent: maxConcurrent,
	}
}

// Checkout turns the shopper's cart into a receipt. Each line is reserved
// independently; a granted reservation is a final sale and is never rolled
// back by a later failure. The cart is rewritten to exactly the rejected
// lines, and the confirmation dispatch at the end is best-effort.
func (s *Service) Checkout(ctx context.Context, shopperID string) (domain.Outcome, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Outcome{}, ErrInvalidInput
	}

	lines, err := s.cart.Lines(ctx, shopperID)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("load cart: %w", err)
	}
	if len(lines) == 0 {
		return domain.Outcome{}, domain.ErrEmptyCart
	}

	// Line order is insignificant to the outcome, so reservations fan out
	// concurrently; results are indexed per line.
	results := make([]Reservation, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range lines {
		idx := idx
		g.Go(func() error {
			ln := lines[idx]
			if ln.Quantity < 1 {
				return fmt.Errorf("line %s: quantity must be at least 1, got %d", ln.ProductID, ln.Quantity)
			}

			res, err := s.stock.Reserve(gctx, ln.ProductID, ln.Quantity)
			if err != nil {
				return fmt.Errorf("reserve %s: %w", ln.ProductID, err)
			}
			results[idx] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Outcome{}, err
	}

	var granted []domain.Line
	var rejected []CartLine
	var unfulfilled []string
	for i, res := range results {
		if res.Granted {
			granted = append(granted, domain.Line{
				ProductID: lines[i].ProductID,
				Quantity:  lines[i].Quantity,
				UnitPrice: res.UnitPrice,
			})
			continue
		}

		// Rejected lines keep their original requested quantity.
		rejected = append(rejected, lines[i])
		unfulfilled = append(unfulfilled, lines[i].ProductID)
		s.log.Debug("reservation rejected",
			slog.String("shopper_id", shopperID),
			slog.String("product_id", lines[i].ProductID),
			slog.String("reason", res.Reason))
	}
	s.m.AddGranted(len(granted))
	s.m.AddRejected(len(rejected))

	if len(granted) == 0 {
		return domain.Outcome{Unfulfilled: unfulfilled}, domain.ErrNothingFulfillable
	}

	amount := domain.Money{
		Currency: granted[0].UnitPrice.Currency,
		Amount:   domain.AmountOf(granted),
	}

	receipt, err := s.receipts.Issue(ctx, shopperID, amount, granted)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("issue receipt: %w", err)
	}
	s.m.IncReceipts()

	if err := s.cart.ReplaceLines(ctx, shopperID, rejected); err != nil {
		// The receipt is committed; report the stale cart distinctly so the
		// caller can re-run the rewrite instead of assuming nothing happened.
		return domain.Outcome{Receipt: receipt, Unfulfilled: unfulfilled},
			&domain.CartWriteError{Receipt: receipt, Err: err}
	}

	out := domain.Outcome{Receipt: receipt, Unfulfilled: unfulfilled}

	if s.notifier != nil {
		if err := s.notifier.NotifyPurchase(ctx, receipt, shopperID); err != nil {
			s.m.IncNotifyFailures()
			s.log.Warn("purchase notification failed",
				slog.String("code", receipt.Code),
				slog.Any("err", err))
		}
	}

	s.log.Info("checkout completed",
		slog.String("shopper_id", shopperID),
		slog.String("code", receipt.Code),
		slog.Int("granted", len(granted)),
		slog.Int("rejected", len(rejected)))

	return out, nil
}
