package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	productsHandler := &ProductsHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}
	settingsHandler := &SettingsHandler{DB: db}

	// Products.
	mux.HandleFunc("GET /api/products", productsHandler.List)
	mux.HandleFunc("POST /api/products", productsHandler.Create)
	mux.HandleFunc("GET /api/products/{id}", productsHandler.Get)
	mux.HandleFunc("PUT /api/products/{id}", productsHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productsHandler.Delete)
	mux.HandleFunc("PUT /api/products/{id}/image", productsHandler.UploadImage)
	mux.HandleFunc("GET /api/products/{id}/image", productsHandler.GetImage)

	// Dashboard.
	mux.HandleFunc("GET /api/dashboard", dashboardHandler.Get)

	// Settings.
	mux.HandleFunc("GET /api/settings/checklist-template", settingsHandler.GetChecklistTemplate)
	mux.HandleFunc("PUT /api/settings/checklist-template", settingsHandler.PutChecklistTemplate)
	mux.HandleFunc("GET /api/settings/status-labels", settingsHandler.GetStatusLabels)
	mux.HandleFunc("PUT /api/settings/status-labels", settingsHandler.PutStatusLabels)
	mux.HandleFunc("GET /api/settings/company", settingsHandler.GetCompanyInfo)
	mux.HandleFunc("PUT /api/settings/company", settingsHandler.PutCompanyInfo)

	return mux
}
