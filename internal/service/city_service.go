package service

import (
	"social-network/internal/model"
	"social-network/internal/specification"
	"social-network/pkg/pagination"
)

// CityService implements the city lookup. Results are ordered by resident
// count, most populated first.
type CityService struct {
	repo CityRepo
}

func NewCityService(repo CityRepo) *CityService {
	return &CityService{repo: repo}
}

// Find returns one page of cities whose name contains the search string.
// An empty search string imposes no constraint.
func (s *CityService) Find(name string, page pagination.Pageable) ([]model.City, int64, error) {
	return s.repo.Find(specification.Contains("city.name", name), page)
}
