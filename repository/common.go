package repository

import (
	"fmt"

	"campus/database"

	"gorm.io/gorm"
)

type QueryBuilder func(*gorm.DB) *gorm.DB

type genericQueryParams struct {
	db        *gorm.DB
	builder   QueryBuilder
	sortField string
	pageNum   int
	pageSize  int
	preloads  []string
}

// genericQueryWithBuilder runs the builder twice, once for the total count
// and once for the page itself, so filters apply to both.
func genericQueryWithBuilder[T any](params *genericQueryParams) (total int64, records []T, err error) {
	var model T

	db := params.db
	if db == nil {
		db = database.DB
	}

	countQuery := params.builder(db.Model(&model))
	if err = countQuery.Limit(-1).Offset(-1).Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("count error: %w", err)
	}

	query := params.builder(db.Model(&model))
	query = query.Scopes(database.Sort(params.sortField))

	if params.pageNum > 0 && params.pageSize > 0 {
		query = query.Scopes(database.Paginate(params.pageNum, params.pageSize))
	}

	for _, preload := range params.preloads {
		query = query.Preload(preload)
	}

	if err = query.Find(&records).Error; err != nil {
		return total, nil, fmt.Errorf("failed to find records: %w", err)
	}

	return total, records, nil
}
