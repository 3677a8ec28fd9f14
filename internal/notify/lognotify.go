package notify

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

// LogDispatcher stands in for a real delivery channel when no broker is
// configured. It only records that a confirmation would have been sent.
type LogDispatcher struct {
	log *slog.Logger
}

func NewLogDispatcher(log *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) NotifyPurchase(_ context.Context, receipt domain.Receipt, recipient string) error {
	d.log.Info("purchase confirmation",
		slog.String("code", receipt.Code),
		slog.String("recipient", recipient),
		slog.Int64("amount", receipt.Amount.Amount))
	return nil
}
