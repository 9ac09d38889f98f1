package models

// User represents an account that can log in and own documents
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	HashedPassword string `gorm:"column:hashed_password;not null" json:"-"` // Hidden from JSON responses
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`
}
