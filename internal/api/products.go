package api

import (
	"database/sql"
	"net/http"

	"github.com/autotradeslanka/partscat/internal/imaging"
	"github.com/autotradeslanka/partscat/internal/model"
	"github.com/autotradeslanka/partscat/internal/store"
)

// ProductsHandler handles product CRUD endpoints.
type ProductsHandler struct {
	DB *sql.DB
}

type createProductRequest struct {
	Name        string                `json:"name"`
	VehicleName string                `json:"vehicle_name"`
	Image       string                `json:"image"`
	Checklist   []model.ChecklistItem `json:"checklist"`
}

type updateProductRequest struct {
	Name        *string               `json:"name"`
	VehicleName *string               `json:"vehicle_name"`
	Image       *string               `json:"image"`
	Checklist   []model.ChecklistItem `json:"checklist"`
}

// productResponse is a product plus its derived status tags. Tags are
// computed per response, never stored.
type productResponse struct {
	model.Product
	Status []model.StatusTag `json:"status"`
}

func toProductResponse(p model.Product) productResponse {
	return productResponse{Product: p, Status: p.Status()}
}

// List handles GET /api/products. Supports ?search= (case-insensitive
// substring on name or vehicle name) and ?status= (all|complete|has-damage|
// missing-parts).
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := store.ListProducts(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")
	products = model.FilterProducts(products, search, status)

	responses := make([]productResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	jsonResponse(w, http.StatusOK, responses)
}

// Create handles POST /api/products. Name, vehicle name, and image are
// required; the checklist defaults to the current template when omitted.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.VehicleName == "" {
		jsonError(w, http.StatusBadRequest, "vehicle name required")
		return
	}
	if req.Image == "" {
		jsonError(w, http.StatusBadRequest, "image required")
		return
	}

	processed, err := imaging.ProcessDataURI(req.Image)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid image: "+err.Error())
		return
	}

	checklist := req.Checklist
	if checklist == nil {
		template, err := store.GetChecklistTemplate(r.Context(), h.DB)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to get checklist template")
			return
		}
		checklist = model.NewChecklist(template)
	} else {
		checklist = model.NormalizeChecklist(checklist)
	}

	product, err := store.CreateProduct(r.Context(), h.DB, req.Name, req.VehicleName, processed.Data, processed.MIME, checklist)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	jsonResponse(w, http.StatusCreated, toProductResponse(*product))
}

// Get handles GET /api/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if product == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	jsonResponse(w, http.StatusOK, toProductResponse(*product))
}

// Update handles PUT /api/products/{id}. The body is a sparse patch:
// omitted fields are left untouched.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil && *req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name must not be empty")
		return
	}
	if req.VehicleName != nil && *req.VehicleName == "" {
		jsonError(w, http.StatusBadRequest, "vehicle name must not be empty")
		return
	}

	patch := model.ProductPatch{
		Name:        req.Name,
		VehicleName: req.VehicleName,
	}
	if req.Image != nil {
		processed, err := imaging.ProcessDataURI(*req.Image)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid image: "+err.Error())
			return
		}
		patch.Image = processed.Data
		patch.ImageMime = processed.MIME
	}
	if req.Checklist != nil {
		patch.Checklist = model.NormalizeChecklist(req.Checklist)
	}

	existing, err := store.GetProduct(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := store.UpdateProduct(r.Context(), h.DB, id, patch); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	product, _ := store.GetProduct(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /api/products/{id}. Deleting an unknown id is a
// benign no-op.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteProduct(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// UploadImage handles PUT /api/products/{id}/image.
func (h *ProductsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := store.GetProduct(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	processed, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := model.ProductPatch{Image: processed.Data, ImageMime: processed.MIME}
	if err := store.UpdateProduct(r.Context(), h.DB, id, patch); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/products/{id}/image.
func (h *ProductsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetProductImage(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
