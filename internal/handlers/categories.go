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
	msgCategoryNotFound  = "Category not found"
	msgCategoryDuplicate = "Category name already exists"
)

// CategoryStore is the persistence behind the category endpoints
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	Update(ctx context.Context, id uint, name string) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoriesHandler manages category endpoints
type CategoriesHandler struct {
	store CategoryStore
	log   logger.Logger
}

// NewCategoriesHandler creates a new CategoriesHandler
func NewCategoriesHandler(store CategoryStore, log logger.Logger) *CategoriesHandler {
	return &CategoriesHandler{store: store, log: log}
}

// CreateCategory handles POST /categories/
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CategoryRequest true "Category payload"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/ [post]
func (h *CategoriesHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	category := &models.Category{Name: req.Name}
	if err := h.store.Create(r.Context(), category); err != nil {
		respondError(w, h.log, storeError(err, msgCategoryNotFound, msgCategoryDuplicate), "Failed to create category")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewCategoryResponse(category))
}

// ListCategories handles GET /categories/
// @Summary List categories with their subcategories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoryWithSubcategories
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/ [get]
func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, h.log, err, "Failed to list categories")
		return
	}

	out := make([]dto.CategoryWithSubcategories, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryWithSubcategories(&categories[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// GetCategory handles GET /categories/{id}
// @Summary Get a category with its subcategories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryWithSubcategories
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoriesHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r, "id", msgCategoryNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	category, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.log, storeError(err, msgCategoryNotFound, msgCategoryDuplicate), "Failed to get category")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewCategoryWithSubcategories(category))
}

// UpdateCategory handles PUT /categories/{id}
// @Summary Replace a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param payload body dto.CategoryRequest true "Category payload"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoriesHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r, "id", msgCategoryNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req dto.CategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	category, err := h.store.Update(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, h.log, storeError(err, msgCategoryNotFound, msgCategoryDuplicate), "Failed to update category")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewCategoryResponse(category))
}

// DeleteCategory handles DELETE /categories/{id}
// @Summary Delete a category
// @Description Subcategories and documents that referenced it are kept with the reference cleared
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoriesHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r, "id", msgCategoryNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, storeError(err, msgCategoryNotFound, msgCategoryDuplicate), "Failed to delete category")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}
