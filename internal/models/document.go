package models

import "time"

// Document is a piece of content owned by a single user
type Document struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"index;size:255;not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	DocumentType  string    `gorm:"size:100;not null" json:"document_type"`
	Summary       *string   `gorm:"type:text" json:"summary"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	OwnerID       *uint     `gorm:"index" json:"owner_id"`
	Owner         *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	CategoryID    *uint     `gorm:"index" json:"category_id"`
	SubcategoryID *uint     `gorm:"index" json:"subcategory_id"`
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Category{}, &Subcategory{}, &Document{}}
}
