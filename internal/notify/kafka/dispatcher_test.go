package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

func TestPurchaseEventPayload(t *testing.T) {
	receipt := domain.Receipt{
		Code:      "TICKET-ABC-12345678",
		Purchaser: "shopper-1",
		Amount:    domain.Money{Currency: "ARS", Amount: 38000},
		Lines: []domain.Line{
			{ProductID: "p1", Quantity: 2, UnitPrice: domain.Money{Currency: "ARS", Amount: 15000}},
			{ProductID: "p2", Quantity: 1, UnitPrice: domain.Money{Currency: "ARS", Amount: 8000}},
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	ev := newPurchaseEvent(receipt, "shopper-1")

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back["code"] != "TICKET-ABC-12345678" {
		t.Fatalf("unexpected code: %v", back["code"])
	}
	if back["amount"].(float64) != 38000 {
		t.Fatalf("unexpected amount: %v", back["amount"])
	}
	if lines := back["lines"].([]any); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
