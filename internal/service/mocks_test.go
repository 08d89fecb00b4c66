package service

import (
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm/clause"

	"social-network/internal/model"
	"social-network/pkg/pagination"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) Save(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepo) Find(spec clause.Expression, joins []string, page pagination.Pageable) ([]model.User, int64, error) {
	args := m.Called(spec, joins, page)
	var users []model.User
	if u := args.Get(0); u != nil {
		users = u.([]model.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) FriendsOf(userID uint) ([]model.User, error) {
	args := m.Called(userID)
	var users []model.User
	if u := args.Get(0); u != nil {
		users = u.([]model.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepo) AddFriend(userID, friendID uint) error {
	args := m.Called(userID, friendID)
	return args.Error(0)
}

func (m *MockUserRepo) DeleteFriend(userID, friendID uint) error {
	args := m.Called(userID, friendID)
	return args.Error(0)
}

type MockCityRepo struct {
	mock.Mock
}

func (m *MockCityRepo) GetByID(id uint) (*model.City, error) {
	args := m.Called(id)
	if c := args.Get(0); c != nil {
		return c.(*model.City), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCityRepo) Find(spec clause.Expression, page pagination.Pageable) ([]model.City, int64, error) {
	args := m.Called(spec, page)
	var cities []model.City
	if c := args.Get(0); c != nil {
		cities = c.([]model.City)
	}
	return cities, args.Get(1).(int64), args.Error(2)
}
