package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/users?"+rawQuery, nil)
	return c
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Pageable
	}{
		{name: "defaults", query: "", want: Pageable{Page: 0, Size: 5}},
		{name: "explicit values", query: "page=2&size=10", want: Pageable{Page: 2, Size: 10}},
		{name: "malformed page falls back", query: "page=abc", want: Pageable{Page: 0, Size: 5}},
		{name: "negative page falls back", query: "page=-1", want: Pageable{Page: 0, Size: 5}},
		{name: "zero size falls back", query: "size=0", want: Pageable{Page: 0, Size: 5}},
		{name: "size is capped", query: "size=1000", want: Pageable{Page: 0, Size: MaxSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromQuery(testContext(tt.query), 5))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Pageable{Page: 0, Size: 5}.Offset())
	assert.Equal(t, 15, Pageable{Page: 3, Size: 5}.Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"a", "b"}, 11, Pageable{Page: 1, Size: 5})
	assert.Equal(t, int64(11), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.Size)

	empty := NewPage(nil, 0, Pageable{Page: 0, Size: 5})
	assert.Equal(t, 0, empty.TotalPages)
}
