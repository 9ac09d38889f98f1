package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched, including rows the caller does not own.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidReference means a category or subcategory id points at nothing.
	ErrInvalidReference = errors.New("invalid reference")
)

// translate maps gorm's errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	}
	return err
}

// nullable turns an optional id into a value gorm writes as NULL when absent.
func nullable(id *uint) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
