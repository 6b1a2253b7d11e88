package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// errorBody is the error document every failing route returns. Clients show
// Error to the user verbatim.
type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain and port errors onto status codes. Unknown errors
// are logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		transition *domain.InvalidTransitionError
	)
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.As(err, &validation):
		status, msg = http.StatusBadRequest, validation.Error()
	case errors.As(err, &transition):
		status, msg = http.StatusConflict, transition.Error()
	case errors.Is(err, port.ErrTransitionInProgress):
		status, msg = http.StatusConflict, port.ErrTransitionInProgress.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, port.ErrProvider):
		status, msg = http.StatusBadGateway, err.Error()
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	h.writeJSON(w, status, errorBody{Error: msg})
}

// decode reads a JSON body into v. Unknown fields are ignored so older
// clients keep working.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}
