package api

import (
	"database/sql"
	"net/http"

	"github.com/autotradeslanka/partscat/internal/model"
	"github.com/autotradeslanka/partscat/internal/store"
)

// SettingsHandler handles the display-configuration endpoints: checklist
// template, status labels, and company info.
type SettingsHandler struct {
	DB *sql.DB
}

// GetChecklistTemplate handles GET /api/settings/checklist-template.
func (h *SettingsHandler) GetChecklistTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := store.GetChecklistTemplate(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get checklist template")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"labels": template})
}

// PutChecklistTemplate handles PUT /api/settings/checklist-template.
// Template changes only affect products created afterwards.
func (h *SettingsHandler) PutChecklistTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Labels []string `json:"labels"`
	}
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Labels) == 0 {
		jsonError(w, http.StatusBadRequest, "labels required")
		return
	}
	for _, label := range req.Labels {
		if label == "" {
			jsonError(w, http.StatusBadRequest, "labels must not be empty")
			return
		}
	}

	if err := store.SetChecklistTemplate(r.Context(), h.DB, req.Labels); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save checklist template")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"labels": req.Labels})
}

// GetStatusLabels handles GET /api/settings/status-labels.
func (h *SettingsHandler) GetStatusLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := store.GetStatusLabels(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get status labels")
		return
	}
	jsonResponse(w, http.StatusOK, labels)
}

// PutStatusLabels handles PUT /api/settings/status-labels.
func (h *SettingsHandler) PutStatusLabels(w http.ResponseWriter, r *http.Request) {
	var labels model.StatusLabels
	if err := decodeJSON(r, &labels); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.SetStatusLabels(r.Context(), h.DB, labels); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save status labels")
		return
	}
	jsonResponse(w, http.StatusOK, labels)
}

// GetCompanyInfo handles GET /api/settings/company.
func (h *SettingsHandler) GetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	info, err := store.GetCompanyInfo(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get company info")
		return
	}
	jsonResponse(w, http.StatusOK, info)
}

// PutCompanyInfo handles PUT /api/settings/company.
func (h *SettingsHandler) PutCompanyInfo(w http.ResponseWriter, r *http.Request) {
	var info model.CompanyInfo
	if err := decodeJSON(r, &info); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.SetCompanyInfo(r.Context(), h.DB, info); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save company info")
		return
	}
	jsonResponse(w, http.StatusOK, info)
}
