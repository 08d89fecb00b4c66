package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-network/internal/model"
	"social-network/pkg/pagination"
)

// CityRepository reads the city reference data.
type CityRepository struct {
	orm *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{orm: db}
}

func (r *CityRepository) GetByID(id uint) (*model.City, error) {
	var city model.City
	if err := r.orm.Preload("Region").First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

// Find returns one page of cities matching the predicate, ordered by
// resident count descending (id ascending on ties), with regions preloaded.
func (r *CityRepository) Find(spec clause.Expression, page pagination.Pageable) ([]model.City, int64, error) {
	counted := r.orm.Model(&model.City{})
	if spec != nil {
		counted = counted.Where(spec)
	}
	var total int64
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.orm.Model(&model.City{}).
		Select("city.*").
		Joins("LEFT JOIN user ON user.city_id = city.id").
		Group("city.id").
		Order("COUNT(user.id) DESC, city.id ASC")
	if spec != nil {
		query = query.Where(spec)
	}

	var cities []model.City
	err := query.
		Preload("Region").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}

	return cities, total, nil
}
