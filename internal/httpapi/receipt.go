package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/storefront/internal/receipt/domain"
)

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	rec, err := h.receipts.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

type listReceiptsResponse struct {
	Items []domain.Receipt `json:"items"`
}

func (h *Handler) listReceiptsByPurchaser(w http.ResponseWriter, r *http.Request) {
	recs, err := h.receipts.ListByPurchaser(r.Context(), chi.URLParam(r, "shopperID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, listReceiptsResponse{Items: recs})
}

func (h *Handler) listRecentReceipts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := h.receipts.ListRecent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, listReceiptsResponse{Items: recs})
}
