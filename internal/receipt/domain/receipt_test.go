package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAmountOf(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Quantity: 2, UnitPrice: Money{Currency: "ARS", Amount: 15000}},
		{ProductID: "p2", Quantity: 1, UnitPrice: Money{Currency: "ARS", Amount: 8000}},
	}

	if got := AmountOf(lines); got != 38000 {
		t.Fatalf("expected 38000, got %d", got)
	}
	if got := AmountOf(nil); got != 0 {
		t.Fatalf("expected 0 for no lines, got %d", got)
	}
}

// The amount must stay derivable from the lines after a serialization
// round trip.
func TestAmountSurvivesRoundTrip(t *testing.T) {
	r := Receipt{
		Code:      "TICKET-ABC123-DEADBEEF",
		Purchaser: "juan@example.com",
		Lines: []Line{
			{ProductID: "p1", Quantity: 3, UnitPrice: Money{Currency: "ARS", Amount: 500}},
			{ProductID: "p2", Quantity: 2, UnitPrice: Money{Currency: "ARS", Amount: 1250}},
		},
		CreatedAt: time.Now().UTC(),
	}
	r.Amount = Money{Currency: "ARS", Amount: AmountOf(r.Lines)}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Receipt
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.Amount.Amount != AmountOf(back.Lines) {
		t.Fatalf("amount %d does not match line sum %d", back.Amount.Amount, AmountOf(back.Lines))
	}
	if back.Amount != r.Amount {
		t.Fatalf("amount changed across round trip: %+v != %+v", back.Amount, r.Amount)
	}
}
