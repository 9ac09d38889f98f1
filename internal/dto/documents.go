package dto

import (
	"time"

	"DOCSHELF_BACK-END/internal/models"
)

// DocumentRequest is the payload for creating or replacing a document.
// On update every field is overwritten, omitted optional fields become null.
type DocumentRequest struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Content       string  `json:"content"`
	DocumentType  string  `json:"document_type" validate:"required,max=100"`
	Summary       *string `json:"summary"`
	CategoryID    *uint   `json:"category_id"`
	SubcategoryID *uint   `json:"subcategory_id"`
}

// Model converts the request into a document; ownership is set by the caller.
func (r DocumentRequest) Model() *models.Document {
	return &models.Document{
		Title:         r.Title,
		Content:       r.Content,
		DocumentType:  r.DocumentType,
		Summary:       r.Summary,
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
	}
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	DocumentType  string    `json:"document_type"`
	Summary       *string   `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerID       *uint     `json:"owner_id"`
	CategoryID    *uint     `json:"category_id"`
	SubcategoryID *uint     `json:"subcategory_id"`
}

func NewDocumentResponse(d *models.Document) DocumentResponse {
	return DocumentResponse{
		ID:            d.ID,
		Title:         d.Title,
		Content:       d.Content,
		DocumentType:  d.DocumentType,
		Summary:       d.Summary,
		CreatedAt:     d.CreatedAt.UTC(),
		OwnerID:       d.OwnerID,
		CategoryID:    d.CategoryID,
		SubcategoryID: d.SubcategoryID,
	}
}
