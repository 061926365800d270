package dto

import (
	"campus/consts"
)

// PaginationReq carries the standard list-endpoint query parameters. Missing
// and out-of-range values fall back to defaults rather than failing the
// request: pageNumber below 1 becomes 1, pageSize is clamped to [1,100].
// Values that do not parse as ints are rejected at the binding layer.
type PaginationReq struct {
	PageNumber int    `form:"pageNumber" json:"pageNumber" example:"1"`
	PageSize   int    `form:"pageSize" json:"pageSize" example:"10"`
	SearchTerm string `form:"searchTerm" json:"searchTerm,omitempty"`
}

// Normalize applies the defaults and clamps in place.
func (p *PaginationReq) Normalize() {
	if p.PageNumber < 1 {
		p.PageNumber = consts.DefaultPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = consts.DefaultPageSize
	}
	if p.PageSize > consts.MaxPageSize {
		p.PageSize = consts.MaxPageSize
	}
}

// ToGormParams converts the normalized request to limit and offset
func (p *PaginationReq) ToGormParams() (limit int, offset int) {
	p.Normalize()
	return p.PageSize, (p.PageNumber - 1) * p.PageSize
}
