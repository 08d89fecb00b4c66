// Package pagination parses page/size request parameters and wraps results
// in a paged envelope.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxSize caps the requested page size.
const MaxSize = 100

// Pageable is a zero-based page request.
type Pageable struct {
	Page int
	Size int
}

// FromQuery reads page and size from the query string. Missing or malformed
// values fall back to page 0 and defaultSize.
func FromQuery(c *gin.Context, defaultSize int) Pageable {
	p := Pageable{Page: 0, Size: defaultSize}

	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page >= 0 {
			p.Page = page
		}
	}
	if v := c.Query("size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			p.Size = size
		}
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}

	return p
}

// Offset returns the row offset of the page.
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Page is the paged response envelope.
type Page struct {
	Content       interface{} `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}

// NewPage wraps content with pagination metadata.
func NewPage(content interface{}, total int64, pageable Pageable) *Page {
	totalPages := 0
	if pageable.Size > 0 {
		totalPages = int((total + int64(pageable.Size) - 1) / int64(pageable.Size))
	}
	return &Page{
		Content:       content,
		Page:          pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
