package models

// Category is a top-level grouping for documents
type Category struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"subcategories"`
	Documents     []Document    `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

// Subcategory optionally belongs to a Category
type Subcategory struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"index;size:255;not null" json:"name"`
	CategoryID *uint      `gorm:"index" json:"category_id"`
	Documents  []Document `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:SET NULL" json:"-"`
}
