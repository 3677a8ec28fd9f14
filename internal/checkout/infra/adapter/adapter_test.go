package adapter

import (
	"context"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	receiptapp "github.com/dwikikusuma/storefront/internal/receipt/app"
	receiptmem "github.com/dwikikusuma/storefront/internal/receipt/infra/memory"
)

func TestLedgerReserver_Mapping(t *testing.T) {
	ctx := context.Background()
	svc := catalogapp.NewService(catalogmem.NewStore())
	reserver := NewLedgerReserver(svc)

	prod, err := svc.CreateProduct(ctx, "Teclado", "", "ARS", 15000, 1)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	t.Run("grant carries the unit price", func(t *testing.T) {
		res, err := reserver.Reserve(ctx, prod.ID, 1)
		if err != nil {
			t.Fatalf("reserve: %v", err)
		}
		if !res.Granted || res.UnitPrice.Amount != 15000 {
			t.Fatalf("unexpected reservation: %+v", res)
		}
	})

	t.Run("short stock is a rejection, not an error", func(t *testing.T) {
		res, err := reserver.Reserve(ctx, prod.ID, 1)
		if err != nil {
			t.Fatalf("reserve: %v", err)
		}
		if res.Granted || res.Reason != "insufficient stock" {
			t.Fatalf("unexpected reservation: %+v", res)
		}
	})

	t.Run("unknown product is a rejection, not an error", func(t *testing.T) {
		res, err := reserver.Reserve(ctx, "ghost", 1)
		if err != nil {
			t.Fatalf("reserve: %v", err)
		}
		if res.Granted || res.Reason != "product not found" {
			t.Fatalf("unexpected reservation: %+v", res)
		}
	})
}

func TestReceiptServiceIssuer_Conversion(t *testing.T) {
	ctx := context.Background()
	svc := receiptapp.NewService(receiptmem.NewRepo(), nil)
	issuer := NewReceiptServiceIssuer(svc)

	lines := []checkoutdomain.Line{
		{ProductID: "p1", Quantity: 2, UnitPrice: checkoutdomain.Money{Currency: "ARS", Amount: 15000}},
	}

	rec, err := issuer.Issue(ctx, "shopper-1", checkoutdomain.Money{Currency: "ARS", Amount: 30000}, lines)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if rec.Code == "" || rec.Purchaser != "shopper-1" {
		t.Fatalf("unexpected receipt: %+v", rec)
	}
	if rec.Amount.Amount != 30000 || rec.Amount.Currency != "ARS" {
		t.Fatalf("unexpected amount: %+v", rec.Amount)
	}
	if len(rec.Lines) != 1 || rec.Lines[0].ProductID != "p1" || rec.Lines[0].UnitPrice.Amount != 15000 {
		t.Fatalf("unexpected lines: %+v", rec.Lines)
	}

	// The persisted receipt round-trips through the conversion unchanged.
	stored, err := svc.GetByCode(ctx, rec.Code)
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if stored.Amount.Amount != rec.Amount.Amount || len(stored.Lines) != len(rec.Lines) {
		t.Fatalf("stored receipt diverged: %+v", stored)
	}
}

func TestCartServiceStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := cartapp.NewService(cartmem.NewRepo())
	store := NewCartServiceStore(svc)

	if _, err := svc.AddItem(ctx, "shopper-1", "p1", 2); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := svc.AddItem(ctx, "shopper-1", "p2", 1); err != nil {
		t.Fatalf("add item: %v", err)
	}

	lines, err := store.Lines(ctx, "shopper-1")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %+v", lines)
	}

	if err := store.ReplaceLines(ctx, "shopper-1", []checkoutapp.CartLine{{ProductID: "p2", Quantity: 1}}); err != nil {
		t.Fatalf("replace lines: %v", err)
	}

	cart, err := svc.GetCart(ctx, "shopper-1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != "p2" {
		t.Fatalf("unexpected cart after replace: %+v", cart.Items)
	}
}
