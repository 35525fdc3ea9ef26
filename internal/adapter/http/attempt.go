package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ad-fanout/internal/core/domain"
)

func (h *Handler) handleGetAttempt(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.svc.GetAttempt(r.Context(), chi.URLParam(r, "attemptID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, attempt)
}

// handleOrphaned lists recent attempts that left paused objects behind so
// they can be cleaned up by hand. `limit` is optional.
func (h *Handler) handleOrphaned(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid limit"})
			return
		}
		limit = n
	}
	attempts, err := h.svc.ListOrphaned(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if attempts == nil {
		attempts = []domain.Attempt{}
	}
	h.writeJSON(w, http.StatusOK, attempts)
}

func (h *Handler) handlePlatforms(w http.ResponseWriter, _ *http.Request) {
	type platform struct {
		ID   domain.Platform `json:"id"`
		Name string          `json:"name"`
	}
	var out []platform
	for _, p := range h.svc.Platforms() {
		out = append(out, platform{ID: p, Name: p.DisplayName()})
	}
	h.writeJSON(w, http.StatusOK, out)
}
