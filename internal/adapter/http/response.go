package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"ad-fanout/internal/core/domain"
)

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decode reads a JSON body of at most maxBodyBytes. It writes the 400 reply
// itself and reports false when the body is unusable.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Details: []string{err.Error()}})
		return false
	}
	return true
}

// writeError maps use case errors to status codes. An expired deadline is
// 504 even when a platform error wraps it; other platform failures on
// status, insights and reach calls are 502. Anything unexpected is logged
// and answered with 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		cerr *domain.ConnectionError
		rerr *domain.RemoteError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.writeJSON(w, http.StatusGatewayTimeout, errorBody{Error: "request timed out"})
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Details: verr.Reasons})
	case errors.Is(err, domain.ErrMissingCredentials):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrUnknownPlatform), errors.Is(err, domain.ErrAttemptNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedAction):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	case errors.As(err, &cerr), errors.As(err, &rerr):
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"event", "http_request_failed",
			"module", "http",
			"layer", "adapter",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
