package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/port"
)

type distributeRequest struct {
	Campaign    domain.UnifiedCampaignData `json:"campaign"`
	Platforms   []string                   `json:"platforms"`
	Credentials domain.Credentials         `json:"credentials"`
}

type distributeResponse struct {
	AttemptID string                          `json:"attemptId"`
	Succeeded int                             `json:"succeeded"`
	Results   []domain.PlatformCampaignResult `json:"results"`
}

// handleDistribute fans the campaign out to the requested platforms, or to
// all of them when none are named. It answers 200 even when every platform
// failed; per-platform outcomes are in the results. A platform in the body
// that is unknown or not served here is a 400.
func (h *Handler) handleDistribute(w http.ResponseWriter, r *http.Request) {
	var body distributeRequest
	if !h.decode(w, r, &body) {
		return
	}
	req := port.DistributeRequest{Campaign: body.Campaign, Credentials: body.Credentials}
	for _, name := range body.Platforms {
		p, err := domain.ParsePlatform(name)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
		req.Platforms = append(req.Platforms, p)
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.distributeTimeout)
	defer cancel()

	attempt, err := h.svc.Distribute(ctx, req)
	if errors.Is(err, domain.ErrUnknownPlatform) {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, distributeResponse{
		AttemptID: attempt.ID,
		Succeeded: attempt.Succeeded(),
		Results:   attempt.Results,
	})
}
