package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"DOCSHELF_BACK-END/internal/models"
)

// DocumentRepository handles database operations for documents.
// Every read and write is scoped to an owner; another user's document
// is indistinguishable from a missing one.
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func checkSubcategory(tx *gorm.DB, subcategoryID *uint) error {
	if subcategoryID == nil {
		return nil
	}
	ok, err := exists(tx, &models.Subcategory{}, *subcategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: subcategory %d", ErrInvalidReference, *subcategoryID)
	}
	return nil
}

func checkDocumentReferences(tx *gorm.DB, doc *models.Document) error {
	if err := checkCategory(tx, doc.CategoryID); err != nil {
		return err
	}
	return checkSubcategory(tx, doc.SubcategoryID)
}

func owned(db *gorm.DB, id, ownerID uint) *gorm.DB {
	return db.Where("id = ? AND owner_id = ?", id, ownerID)
}

// Create inserts a document for ownerID. CreatedAt is set here when zero.
func (r *DocumentRepository) Create(ctx context.Context, ownerID uint, doc *models.Document) error {
	doc.ID = 0
	doc.OwnerID = &ownerID
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkDocumentReferences(tx, doc); err != nil {
			return err
		}
		return translate(tx.Omit("Owner").Create(doc).Error)
	})
}

// ListByOwner returns the documents owned by ownerID.
func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetOwned returns document id if ownerID owns it.
func (r *DocumentRepository) GetOwned(ctx context.Context, id, ownerID uint) (*models.Document, error) {
	var doc models.Document
	if err := owned(r.db.WithContext(ctx), id, ownerID).First(&doc).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

// UpdateOwned overwrites every editable field of document id.
// Owner and creation time never change.
func (r *DocumentRepository) UpdateOwned(ctx context.Context, id, ownerID uint, doc *models.Document) (*models.Document, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := owned(tx, id, ownerID).First(&models.Document{}).Error; err != nil {
			return translate(err)
		}
		if err := checkDocumentReferences(tx, doc); err != nil {
			return err
		}
		return translate(owned(tx.Model(&models.Document{}), id, ownerID).Updates(map[string]interface{}{
			"title":          doc.Title,
			"content":        doc.Content,
			"document_type":  doc.DocumentType,
			"summary":        doc.Summary,
			"category_id":    nullable(doc.CategoryID),
			"subcategory_id": nullable(doc.SubcategoryID),
		}).Error)
	})
	if err != nil {
		return nil, err
	}
	return r.GetOwned(ctx, id, ownerID)
}

// DeleteOwned removes document id if ownerID owns it.
func (r *DocumentRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	res := owned(r.db.WithContext(ctx), id, ownerID).Delete(&models.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
