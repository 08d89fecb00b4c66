package handler

import (
	"github.com/gin-gonic/gin"

	"social-network/internal/service"
	"social-network/pkg/pagination"
	"social-network/pkg/response"
)

// defaultCityPageSize is the default page size of city lists.
const defaultCityPageSize = 10

type CityHandler struct {
	service *service.CityService
}

func NewCityHandler(s *service.CityService) *CityHandler {
	return &CityHandler{service: s}
}

// List returns cities whose name contains the search string, most
// populated first.
func (h *CityHandler) List(c *gin.Context) {
	page := pagination.FromQuery(c, defaultCityPageSize)
	cities, total, err := h.service.Find(c.Query("name"), page)
	if err != nil {
		response.InternalError(c, "failed to search cities")
		return
	}

	response.Success(c, pagination.NewPage(response.FilterCityList(cities), total, page))
}
