package handlers

import (
	"context"
	"net/http"

	"DOCSHELF_BACK-END/internal/dto"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/middleware"
	"DOCSHELF_BACK-END/internal/models"
	"DOCSHELF_BACK-END/internal/utils"
)

const msgDocumentNotFound = "Document not found"

// DocumentStore is the owner-scoped persistence behind the document endpoints
type DocumentStore interface {
	Create(ctx context.Context, ownerID uint, doc *models.Document) error
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Document, error)
	GetOwned(ctx context.Context, id, ownerID uint) (*models.Document, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, doc *models.Document) (*models.Document, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) error
}

// DocumentsHandler manages document endpoints. Every operation acts on the
// caller's own documents only.
type DocumentsHandler struct {
	store DocumentStore
	log   logger.Logger
}

// NewDocumentsHandler creates a new DocumentsHandler
func NewDocumentsHandler(store DocumentStore, log logger.Logger) *DocumentsHandler {
	return &DocumentsHandler{store: store, log: log}
}

func currentUserID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, middleware.MsgNotAuthenticated)
		return 0, false
	}
	return user.ID, true
}

// CreateDocument handles POST /documents/
// @Summary Create a document owned by the caller
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.DocumentRequest true "Document payload"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /documents/ [post]
func (h *DocumentsHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.DocumentRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	doc := req.Model()
	if err := h.store.Create(r.Context(), ownerID, doc); err != nil {
		respondError(w, h.log, storeError(err, msgDocumentNotFound, msgDocumentNotFound), "Failed to create document")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewDocumentResponse(doc))
}

// ListDocuments handles GET /documents/
// @Summary List the caller's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /documents/ [get]
func (h *DocumentsHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	docs, err := h.store.ListByOwner(r.Context(), ownerID)
	if err != nil {
		respondError(w, h.log, err, "Failed to list documents")
		return
	}

	out := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, dto.NewDocumentResponse(&docs[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// GetDocument handles GET /documents/{id}
// @Summary Get one of the caller's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentsHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(r, "id", msgDocumentNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	doc, err := h.store.GetOwned(r.Context(), id, ownerID)
	if err != nil {
		respondError(w, h.log, storeError(err, msgDocumentNotFound, msgDocumentNotFound), "Failed to get document")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewDocumentResponse(doc))
}

// UpdateDocument handles PUT /documents/{id}
// @Summary Replace one of the caller's documents
// @Description Every field is overwritten; created_at and owner are preserved
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param payload body dto.DocumentRequest true "Document payload"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /documents/{id} [put]
func (h *DocumentsHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(r, "id", msgDocumentNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req dto.DocumentRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	doc, err := h.store.UpdateOwned(r.Context(), id, ownerID, req.Model())
	if err != nil {
		respondError(w, h.log, storeError(err, msgDocumentNotFound, msgDocumentNotFound), "Failed to update document")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewDocumentResponse(doc))
}

// DeleteDocument handles DELETE /documents/{id}
// @Summary Delete one of the caller's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /documents/{id} [delete]
func (h *DocumentsHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(r, "id", msgDocumentNotFound)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.store.DeleteOwned(r.Context(), id, ownerID); err != nil {
		respondError(w, h.log, storeError(err, msgDocumentNotFound, msgDocumentNotFound), "Failed to delete document")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Document deleted successfully"})
}
