package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-network/internal/model"
	"social-network/internal/specification"
	"social-network/pkg/pagination"
)

// UserRepository persists users and friendship edges.
type UserRepository struct {
	orm *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{orm: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.orm.Create(user).Error
}

// GetByID loads a user with their city and region.
func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.orm.Preload("City.Region").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Save(user *model.User) error {
	return r.orm.Save(user).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.orm.Delete(&model.User{}, id).Error
}

// Find runs a compiled filter predicate against the user table and returns
// one page of matches plus the total count. A nil predicate returns the
// unfiltered set.
func (r *UserRepository) Find(spec clause.Expression, joins []string, page pagination.Pageable) ([]model.User, int64, error) {
	query := r.orm.Model(&model.User{})
	for _, join := range joins {
		query = query.Joins(join)
	}
	if spec != nil {
		query = query.Where(spec)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.
		Order("user.id").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// FriendsOf returns every user connected to userID by a friendship edge in
// either direction.
func (r *UserRepository) FriendsOf(userID uint) ([]model.User, error) {
	var friends []model.User
	err := r.orm.Model(&model.User{}).
		Where(specification.IsFriendOf(userID)).
		Order("user.id").
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// AddFriend stores the directed edge (userID, friendID). Readers treat the
// relation as undirected, so one row is enough for symmetry.
func (r *UserRepository) AddFriend(userID, friendID uint) error {
	return r.orm.Create(&model.Friendship{UserID: userID, FriendID: friendID}).Error
}

// DeleteFriend removes the friendship edges between the two users in both
// directions, in one statement.
func (r *UserRepository) DeleteFriend(userID, friendID uint) error {
	return r.orm.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&model.Friendship{}).Error
}
