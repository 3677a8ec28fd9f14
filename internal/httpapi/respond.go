package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("write response", slog.Any("err", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code, msg := httpStatusFromError(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", slog.Any("err", err))
	}
	h.writeJSON(w, status, errorBody{Code: code, Message: msg})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "malformed JSON body"})
		return false
	}
	return true
}
