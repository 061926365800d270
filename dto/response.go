package dto

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the wire envelope carried by every endpoint. Invariants:
// success implies errors == nil, failure implies data == nil. Message is
// always a complete, user-displayable sentence.
type APIResponse[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Errors    any    `json:"errors"`
	Timestamp string `json:"timestamp"`
}

// PagedResult is the payload shape of every list endpoint, wrapped inside
// the envelope's data field. TotalPages is always ceil(TotalCount/PageSize)
// and len(Items) never exceeds PageSize.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResult assembles a page. Items is never serialized as null.
func NewPagedResult[T any](items []T, totalCount int64, page *PaginationReq) *PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if page.PageSize > 0 {
		totalPages = int((totalCount + int64(page.PageSize) - 1) / int64(page.PageSize))
	}
	return &PagedResult[T]{
		Items:      items,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// JSONResponse writes a success envelope with an explicit status code
func JSONResponse[T any](c *gin.Context, code int, message string, data T) {
	c.JSON(code, APIResponse[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

// SuccessResponse writes a 200 envelope
func SuccessResponse[T any](c *gin.Context, message string, data T) {
	JSONResponse(c, http.StatusOK, message, data)
}

// CreatedResponse writes a 201 envelope with a Location header
func CreatedResponse[T any](c *gin.Context, message, location string, data T) {
	if location != "" {
		c.Header("Location", location)
	}
	JSONResponse(c, http.StatusCreated, message, data)
}

// ErrorResponse writes a failure envelope. Data is always null on failure.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse[any]{
		Success:   false,
		Message:   message,
		Timestamp: timestamp(),
	})
}

// ValidationErrorResponse writes a 400 envelope with field-level detail for
// form highlighting. Clients treat errors as opaque display content.
func ValidationErrorResponse(c *gin.Context, message string, errs any) {
	c.JSON(http.StatusBadRequest, APIResponse[any]{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: timestamp(),
	})
}
