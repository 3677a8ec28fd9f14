package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

func (h *Handler) doCheckout(w http.ResponseWriter, r *http.Request) {
	out, err := h.checkout.Checkout(r.Context(), chi.URLParam(r, "shopperID"))
	if err == nil {
		h.writeJSON(w, http.StatusOK, out)
		return
	}

	// The receipt committed but the cart rewrite failed: the sale stands,
	// so the client gets the authoritative receipt along with the error.
	var cwe *domain.CartWriteError
	if errors.As(err, &cwe) {
		h.log.Error("cart rewrite failed after receipt", slog.String("code", cwe.Receipt.Code), slog.Any("err", cwe.Err))
		h.writeJSON(w, http.StatusInternalServerError, struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Receipt domain.Receipt `json:"receipt"`
		}{Code: "CART_WRITE_FAILED", Message: "purchase recorded but the cart could not be updated", Receipt: cwe.Receipt})
		return
	}

	if errors.Is(err, domain.ErrNothingFulfillable) {
		h.writeJSON(w, http.StatusConflict, struct {
			Code        string   `json:"code"`
			Message     string   `json:"message"`
			Unfulfilled []string `json:"unfulfilled"`
		}{Code: "NOTHING_FULFILLABLE", Message: err.Error(), Unfulfilled: out.Unfulfilled})
		return
	}

	h.writeError(w, err)
}
