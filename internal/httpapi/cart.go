package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), chi.URLParam(r, "shopperID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) cartCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.carts.Count(r.Context(), chi.URLParam(r, "shopperID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.carts.AddItem(r.Context(), chi.URLParam(r, "shopperID"), req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.carts.SetItemQuantity(r.Context(), chi.URLParam(r, "shopperID"), chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.RemoveItem(r.Context(), chi.URLParam(r, "shopperID"), chi.URLParam(r, "productID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Clear(r.Context(), chi.URLParam(r, "shopperID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}
