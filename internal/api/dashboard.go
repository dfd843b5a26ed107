package api

import (
	"database/sql"
	"net/http"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/autotradeslanka/partscat/internal/model"
	"github.com/autotradeslanka/partscat/internal/store"
)

// recentWindow is how far back "recently added/updated" counts reach.
const recentWindow = 7 * 24 * time.Hour

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 10

// DashboardHandler serves the aggregate counts and recent activity feed.
type DashboardHandler struct {
	DB *sql.DB
}

type activityEntry struct {
	model.Activity
	TimeAgo string `json:"time_ago"`
}

type dashboardResponse struct {
	TotalProducts    int                `json:"total_products"`
	WithDamage       int                `json:"with_damage"`
	WithMissingParts int                `json:"with_missing_parts"`
	RecentlyAdded    int                `json:"recently_added"`
	RecentlyUpdated  int                `json:"recently_updated"`
	StatusLabels     model.StatusLabels `json:"status_labels"`
	RecentActivity   []activityEntry    `json:"recent_activity"`
}

// Get handles GET /api/dashboard. All counts are derived on demand from
// the product collection; nothing here is cached.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	products, err := store.ListProducts(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	now := time.Now()
	resp := dashboardResponse{TotalProducts: len(products)}
	for _, p := range products {
		tags := p.Status()
		if slices.Contains(tags, model.StatusHasDamage) {
			resp.WithDamage++
		}
		if slices.Contains(tags, model.StatusMissingParts) {
			resp.WithMissingParts++
		}
		if now.Sub(p.CreatedAt) < recentWindow {
			resp.RecentlyAdded++
		}
		// Products never edited after creation don't count as updated.
		if !p.UpdatedAt.Equal(p.CreatedAt) && now.Sub(p.UpdatedAt) < recentWindow {
			resp.RecentlyUpdated++
		}
	}

	labels, err := store.GetStatusLabels(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get status labels")
		return
	}
	resp.StatusLabels = labels

	activities, err := store.ListActivities(r.Context(), h.DB, recentActivityLimit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list activities")
		return
	}

	resp.RecentActivity = make([]activityEntry, 0, len(activities))
	for _, a := range activities {
		resp.RecentActivity = append(resp.RecentActivity, activityEntry{
			Activity: a,
			TimeAgo:  humanize.Time(a.Timestamp),
		})
	}

	jsonResponse(w, http.StatusOK, resp)
}
