package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ad-fanout/internal/core/domain"
)

type statusRequest struct {
	Status      domain.CampaignStatus `json:"status"`
	Credentials domain.Credentials    `json:"credentials"`
}

type credentialsRequest struct {
	Credentials domain.Credentials `json:"credentials"`
}

// handleStatus pauses or activates a campaign created earlier. It answers
// 204 on success.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	p, err := domain.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body statusRequest
	if !h.decode(w, r, &body) {
		return
	}
	if err = h.svc.UpdateStatus(r.Context(), p, chi.URLParam(r, "campaignID"), body.Status, body.Credentials); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleInsights returns delivery metrics for a campaign. It accepts
// optional `from` and `to` query parameters as RFC3339 timestamps or plain
// dates. Without them the platform's default period applies. Credentials
// travel in the body.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	p, err := domain.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var (
		q      = r.URL.Query()
		period domain.DateRange
	)
	if period.From, err = parseTime(q.Get("from")); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid 'from' timestamp"})
		return
	}
	if period.To, err = parseTime(q.Get("to")); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid 'to' timestamp"})
		return
	}

	var body credentialsRequest
	if !h.decode(w, r, &body) {
		return
	}
	insights, err := h.svc.Insights(r.Context(), p, chi.URLParam(r, "campaignID"), period, body.Credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insights)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
