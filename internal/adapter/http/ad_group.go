package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-manager/internal/core/domain"
)

func (h *Handler) handleListAdGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListAdGroups(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if groups == nil {
		groups = []domain.AdGroup{}
	}
	h.writeJSON(w, http.StatusOK, groups)
}

func (h *Handler) handleCreateAdGroup(w http.ResponseWriter, r *http.Request) {
	var form domain.AdGroupFormData
	if !h.decode(w, r, &form) {
		return
	}
	g, err := h.svc.CreateAdGroup(r.Context(), chi.URLParam(r, "id"), form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, g)
}

func (h *Handler) handleGetAdGroup(w http.ResponseWriter, r *http.Request) {
	h.adGroupAction(w, r, h.svc.GetAdGroup)
}

// handleUpdateAdGroup applies a partial update; fields missing from the
// body keep their stored value.
func (h *Handler) handleUpdateAdGroup(w http.ResponseWriter, r *http.Request) {
	var patch domain.AdGroupPatch
	if !h.decode(w, r, &patch) {
		return
	}
	g, err := h.svc.UpdateAdGroup(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, g)
}

// handleDeleteAdGroup marks the ad group REMOVED and returns it.
func (h *Handler) handleDeleteAdGroup(w http.ResponseWriter, r *http.Request) {
	h.adGroupAction(w, r, h.svc.DeleteAdGroup)
}

func (h *Handler) handlePauseAdGroup(w http.ResponseWriter, r *http.Request) {
	h.adGroupAction(w, r, h.svc.PauseAdGroup)
}

func (h *Handler) handleEnableAdGroup(w http.ResponseWriter, r *http.Request) {
	h.adGroupAction(w, r, h.svc.EnableAdGroup)
}

func (h *Handler) adGroupAction(w http.ResponseWriter, r *http.Request, action func(context.Context, string) (*domain.AdGroup, error)) {
	g, err := action(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, g)
}
