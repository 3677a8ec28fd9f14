package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	receiptapp "github.com/dwikikusuma/storefront/internal/receipt/app"
)

func TestHTTPStatusFromError(t *testing.T) {
	t.Run("invalid input -> 400", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromError(catalogapp.ErrInvalidInput)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("wrapped invalid input -> 400", func(t *testing.T) {
		err := fmt.Errorf("add item: %w", cartapp.ErrInvalidInput)
		gotStatus, gotCode, _ := httpStatusFromError(err)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("empty cart -> 400", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromError(checkoutdomain.ErrEmptyCart)
		if gotStatus != http.StatusBadRequest || gotCode != "EMPTY_CART" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("nothing fulfillable -> 409", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromError(checkoutdomain.ErrNothingFulfillable)
		if gotStatus != http.StatusConflict || gotCode != "NOTHING_FULFILLABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("not in cart -> 404", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromError(cartapp.ErrNotInCart)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_IN_CART" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("not found -> 404", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromError(receiptapp.ErrNotFound)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("code space exhausted -> 503", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromError(receiptapp.ErrCodeSpaceExhausted)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "UNAVAILABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown error -> 500 without message", func(t *testing.T) {
		gotStatus, gotCode, gotMsg := httpStatusFromError(errors.New("secret detail"))
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
		if gotMsg == "secret detail" {
			t.Fatal("internal detail leaked to client")
		}
	})
}
