package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"DOCSHELF_BACK-END/internal/models"
)

// CategoryRepository handles database operations for categories.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func withSubcategories(db *gorm.DB) *gorm.DB {
	return db.Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
		return db.Order("subcategories.id")
	})
}

// Create inserts a category. A taken name yields ErrDuplicate.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Omit("Subcategories", "Documents").Create(category).Error; err != nil {
		return translate(err)
	}
	category.Subcategories = []models.Subcategory{}
	return nil
}

// List returns every category with its subcategories.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := withSubcategories(r.db.WithContext(ctx)).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns one category with its subcategories.
func (r *CategoryRepository) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := withSubcategories(r.db.WithContext(ctx)).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// Update overwrites the category name.
func (r *CategoryRepository) Update(ctx context.Context, id uint, name string) (*models.Category, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Model(&models.Category{ID: id}).Update("name", name).Error)
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes a category and clears every subcategory and document reference to it.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Model(&models.Subcategory{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach subcategories: %w", err)
		}
		if err := tx.Model(&models.Document{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach documents: %w", err)
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}

// exists reports whether a row of model with id is present.
func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	err := tx.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
