package httpapi

import (
	"errors"
	"net/http"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	receiptapp "github.com/dwikikusuma/storefront/internal/receipt/app"
)

// httpStatusFromError maps service errors onto HTTP status and a stable
// machine-readable code. Unknown errors collapse to 500 without leaking
// their message.
func httpStatusFromError(err error) (int, string, string) {
	switch {
	case errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, receiptapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()

	case errors.Is(err, checkoutdomain.ErrEmptyCart):
		return http.StatusBadRequest, "EMPTY_CART", err.Error()

	case errors.Is(err, checkoutdomain.ErrNothingFulfillable):
		return http.StatusConflict, "NOTHING_FULFILLABLE", err.Error()

	case errors.Is(err, cartapp.ErrNotInCart):
		return http.StatusNotFound, "NOT_IN_CART", err.Error()

	case errors.Is(err, cartapp.ErrCartNotFound),
		errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, receiptapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()

	case errors.Is(err, receiptapp.ErrCodeSpaceExhausted):
		return http.StatusServiceUnavailable, "UNAVAILABLE", err.Error()

	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
