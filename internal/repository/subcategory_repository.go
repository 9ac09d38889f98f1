package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"DOCSHELF_BACK-END/internal/models"
)

// SubcategoryRepository handles database operations for subcategories.
type SubcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a new SubcategoryRepository.
func NewSubcategoryRepository(db *gorm.DB) *SubcategoryRepository {
	return &SubcategoryRepository{db: db}
}

func checkCategory(tx *gorm.DB, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	ok, err := exists(tx, &models.Category{}, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: category %d", ErrInvalidReference, *categoryID)
	}
	return nil
}

// Create inserts a subcategory, optionally under an existing category.
func (r *SubcategoryRepository) Create(ctx context.Context, sub *models.Subcategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCategory(tx, sub.CategoryID); err != nil {
			return err
		}
		return translate(tx.Omit("Documents").Create(sub).Error)
	})
}

// List returns every subcategory.
func (r *SubcategoryRepository) List(ctx context.Context) ([]models.Subcategory, error) {
	var subs []models.Subcategory
	if err := r.db.WithContext(ctx).Order("id").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Get returns one subcategory.
func (r *SubcategoryRepository) Get(ctx context.Context, id uint) (*models.Subcategory, error) {
	var sub models.Subcategory
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

// Update overwrites name and category of a subcategory.
func (r *SubcategoryRepository) Update(ctx context.Context, id uint, name string, categoryID *uint) (*models.Subcategory, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Subcategory{}, id).Error; err != nil {
			return translate(err)
		}
		if err := checkCategory(tx, categoryID); err != nil {
			return err
		}
		return translate(tx.Model(&models.Subcategory{ID: id}).Updates(map[string]interface{}{
			"name":        name,
			"category_id": nullable(categoryID),
		}).Error)
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes a subcategory and clears document references to it.
func (r *SubcategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Subcategory{}, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Model(&models.Document{}).Where("subcategory_id = ?", id).
			Update("subcategory_id", nil).Error; err != nil {
			return fmt.Errorf("detach documents: %w", err)
		}
		return tx.Delete(&models.Subcategory{}, id).Error
	})
}
