package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/segmentio/kafka-go"
)

// Dispatcher publishes purchase confirmations as JSON events. The checkout
// engine treats delivery as best-effort; a failed publish only surfaces as
// an error to be logged.
type Dispatcher struct {
	writer *kafka.Writer
}

func NewDispatcher(brokersCSV, topic string) *Dispatcher {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Dispatcher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

type purchaseEvent struct {
	Code      string      `json:"code"`
	Purchaser string      `json:"purchaser"`
	Recipient string      `json:"recipient"`
	Amount    int64       `json:"amount"`
	Currency  string      `json:"currency"`
	Lines     []eventLine `json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
}

type eventLine struct {
	ProductID  string `json:"product_id"`
	Quantity   int64  `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

func newPurchaseEvent(receipt domain.Receipt, recipient string) purchaseEvent {
	lines := make([]eventLine, 0, len(receipt.Lines))
	for _, ln := range receipt.Lines {
		lines = append(lines, eventLine{
			ProductID:  ln.ProductID,
			Quantity:   ln.Quantity,
			UnitAmount: ln.UnitPrice.Amount,
		})
	}

	return purchaseEvent{
		Code:      receipt.Code,
		Purchaser: receipt.Purchaser,
		Recipient: recipient,
		Amount:    receipt.Amount.Amount,
		Currency:  receipt.Amount.Currency,
		Lines:     lines,
		CreatedAt: receipt.CreatedAt,
	}
}

func (d *Dispatcher) NotifyPurchase(ctx context.Context, receipt domain.Receipt, recipient string) error {
	data, err := json.Marshal(newPurchaseEvent(receipt, recipient))
	if err != nil {
		return err
	}

	return d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(receipt.Code),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

func (d *Dispatcher) Close() error {
	return d.writer.Close()
}
