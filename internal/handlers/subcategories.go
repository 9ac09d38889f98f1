package handlers

import (
	"context"
	"net/http"

	"DOCSHELF_BACK-END/internal/dto"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/models"
	"DOCSHELF_BACK-END/internal/utils"
)

const (
	msgSubcategoryNotFound  = "Subcategory not found"
	msgSubcategoryDuplicate = "Subcategory already exists"
)

// SubcategoryStore is the persistence behind the subcategory endpoints
type SubcategoryStore interface {
	Create(ctx context.Context, sub *models.Subcategory) error
	List(ctx context.Context) ([]models.Subcategory, error)
	Get(ctx context.Context, id uint) (*models.Subcategory, error)
	Update(ctx context.Context, id uint, name string, categoryID *uint) (*models.Subcategory, error)
	Delete(ctx context.Context, id uint) error
}

// SubcategoriesHandler manages subcategory endpoints
type SubcategoriesHandler struct {
	store SubcategoryStore
	log   logger.Logger
}

// NewSubcategoriesHandler creates a new SubcategoriesHandler
func NewSubcategoriesHandler(store SubcategoryStore, log logger.Logger) *SubcategoriesHandler {
	return &SubcategoriesHandler{store: store, log: log}
}

// CreateSubcategory handles POST /subcategories/
// @Summary Create a subcategory
// @Tags subcategories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SubcategoryRequest true "Subcategory payload"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /subcategories/ [post]
func (h *SubcategoriesHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req dto.SubcategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	sub := &models.Subcategory{Name: req.Name, CategoryID: req.CategoryID}
	if err := h.store.Create(r.Context(), sub); err != nil {
		respondError(w, h.log, storeError(err, msgSubcategoryNotFound, msgSubcategoryDuplicate), "Failed to create subcategory")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewSubcategoryResponse(sub))
}

// ListSubcategories handles GET /subcategories/
// @Summary List subcategories
// @Tags subcategories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SubcategoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /subcategories/ [get]
func (h *SubcategoriesHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, h.log, err, "Failed to list subcategories")
		return
	}

	out := make([]dto.SubcategoryResponse, 0, len(subs))
	for i := range subs {
		out = append(out, dto.NewSubcategoryResponse(&subs[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// GetSubcategory handles GET /subcategories/{id}
// @Summary Get a subcategory
// @Tags subcategories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subcategory ID"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subcategories/{id} [get]
func (h *SubcategoriesHandler) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r, "id", msgSubcategoryNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	sub, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.log, storeError(err, msgSubcategoryNotFound, msgSubcategoryDuplicate), "Failed to get subcategory")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewSubcategoryResponse(sub))
}

// UpdateSubcategory handles PUT /subcategories/{id}
// @Summary Replace a subcategory
// @Tags subcategories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subcategory ID"
// @Param payload body dto.SubcategoryRequest true "Subcategory payload"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subcategories/{id} [put]
func (h *SubcategoriesHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r, "id", msgSubcategoryNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req dto.SubcategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	sub, err := h.store.Update(r.Context(), id, req.Name, req.CategoryID)
	if err != nil {
		respondError(w, h.log, storeError(err, msgSubcategoryNotFound, msgSubcategoryDuplicate), "Failed to update subcategory")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewSubcategoryResponse(sub))
}

// DeleteSubcategory handles DELETE /subcategories/{id}
// @Summary Delete a subcategory
// @Tags subcategories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subcategory ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subcategories/{id} [delete]
func (h *SubcategoriesHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r, "id", msgSubcategoryNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, storeError(err, msgSubcategoryNotFound, msgSubcategoryDuplicate), "Failed to delete subcategory")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Subcategory deleted successfully"})
}
