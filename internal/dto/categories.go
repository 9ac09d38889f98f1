package dto

import "DOCSHELF_BACK-END/internal/models"

// CategoryRequest is the payload for creating or replacing a category
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CategoryResponse is a category without its children
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryWithSubcategories is a category as listed, children inlined
type CategoryWithSubcategories struct {
	ID            uint                  `json:"id"`
	Name          string                `json:"name"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// SubcategoryRequest is the payload for creating or replacing a subcategory
type SubcategoryRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	CategoryID *uint  `json:"category_id"`
}

// SubcategoryResponse represents a subcategory
type SubcategoryResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID *uint  `json:"category_id"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func NewCategoryWithSubcategories(c *models.Category) CategoryWithSubcategories {
	subs := make([]SubcategoryResponse, 0, len(c.Subcategories))
	for i := range c.Subcategories {
		subs = append(subs, NewSubcategoryResponse(&c.Subcategories[i]))
	}
	return CategoryWithSubcategories{ID: c.ID, Name: c.Name, Subcategories: subs}
}

func NewSubcategoryResponse(s *models.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID}
}
