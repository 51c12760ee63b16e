// Package store provides typed access to the posts and comments tables
// with the creator joined in, plus the cursor pagination rules both
// feeds share. The gorm handle is injected; the package keeps no
// connection state of its own.
package store

import "gorm.io/gorm"

// Store wraps an open gorm handle. Lifecycle (open, pool sizing, close)
// belongs to the hosting process.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
