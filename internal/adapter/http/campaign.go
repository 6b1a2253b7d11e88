package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-manager/internal/core/domain"
)

// handleListCampaigns returns every campaign, newest first, as a JSON array.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// campaignDetail is a campaign read on its own. Its ad_groups key is
// always present, empty or not.
type campaignDetail struct {
	*domain.Campaign
	AdGroups []domain.AdGroup `json:"ad_groups"`
}

// handleGetCampaign returns one campaign with its ad groups. Unknown ids
// produce HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	detail := campaignDetail{Campaign: c, AdGroups: c.AdGroups}
	if detail.AdGroups == nil {
		detail.AdGroups = []domain.AdGroup{}
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// handleCreateCampaign decodes a campaign draft and stores it as DRAFT.
// Validation failures produce HTTP 400; the created campaign is returned
// with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var form domain.CampaignFormData
	if !h.decode(w, r, &form) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handlePublishCampaign publishes a DRAFT campaign. Any other status yields
// HTTP 409, platform failures HTTP 502.
func (h *Handler) handlePublishCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.PublishCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handlePauseCampaign serves both /pause and /disable.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.PauseCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
