package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-fanout/internal/core/domain"
)

type reachRequest struct {
	Targeting   domain.UnifiedTargeting `json:"targeting"`
	Credentials domain.Credentials      `json:"credentials"`
}

// handleReach sizes an audience before any campaign exists. Platforms
// without an estimate endpoint answer 422.
func (h *Handler) handleReach(w http.ResponseWriter, r *http.Request) {
	p, err := domain.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body reachRequest
	if !h.decode(w, r, &body) {
		return
	}
	est, err := h.svc.EstimateReach(r.Context(), p, body.Targeting, body.Credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, est)
}
