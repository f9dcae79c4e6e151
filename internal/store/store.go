// Package store holds the business-level operations on users and items. All
// persistence goes through here; handlers never touch gorm directly.
package store

import "gorm.io/gorm"

// Pagination defaults applied when the caller leaves offset/limit
// unspecified or supplies negative values.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = DefaultSkip
	}

	if limit < 0 {
		limit = DefaultLimit
	}

	return skip, limit
}
