package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// NotDeleted excludes soft-deleted rows. Every list and lookup query goes
// through this scope.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// KeywordSearch matches keyword as a case-insensitive substring over the
// given columns, OR-combined. An empty keyword leaves the query untouched.
func KeywordSearch(keyword string, fields ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			return db
		}
		query := ""
		for i, field := range fields {
			if i > 0 {
				query += " OR "
			}
			query += fmt.Sprintf("LOWER(%s) LIKE ?", field)
		}
		args := make([]any, len(fields))
		pattern := "%" + strings.ToLower(keyword) + "%"
		for i := range args {
			args[i] = pattern
		}
		return db.Where(query, args...)
	}
}

// Paginate applies offset/limit for a 1-based page number.
func Paginate(pageNumber, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (pageNumber - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}

// Sort applies a deterministic order, defaulting to newest-first.
func Sort(sort string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sort == "" {
			sort = "created_at DESC, id DESC"
		}
		return db.Order(sort)
	}
}
