package service

import (
	"time"

	"gorm.io/gorm/clause"

	"social-network/internal/filter"
	"social-network/internal/model"
	"social-network/pkg/pagination"
)

// UserRepo is the slice of the user repository the service depends on.
type UserRepo interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	Save(user *model.User) error
	Delete(id uint) error
	Find(spec clause.Expression, joins []string, page pagination.Pageable) ([]model.User, int64, error)
	FriendsOf(userID uint) ([]model.User, error)
	AddFriend(userID, friendID uint) error
	DeleteFriend(userID, friendID uint) error
}

// CityRepo is the slice of the city repository the service depends on.
type CityRepo interface {
	GetByID(id uint) (*model.City, error)
	Find(spec clause.Expression, page pagination.Pageable) ([]model.City, int64, error)
}

// TxRunner runs fn inside one database transaction and hands it
// transaction-scoped repositories: every step of fn commits or rolls back
// together. The concrete runner is wired in main over gorm's Transaction.
type TxRunner func(fn func(users UserRepo, cities CityRepo) error) error

// UserService implements profile CRUD, friend management and filtered
// search over the user collection. Reads go straight to the repository;
// every mutation runs through the transaction runner, which supplies
// transaction-scoped repositories of its own.
type UserService struct {
	repo UserRepo
	tx   TxRunner
}

func NewUserService(repo UserRepo, tx TxRunner) *UserService {
	return &UserService{repo: repo, tx: tx}
}

// RegisterInput carries the fields of a registration request. Name and
// surname are required; everything else is kept when provided.
type RegisterInput struct {
	Name      string
	Surname   string
	BirthDate *time.Time
	Gender    model.Gender
	Interests string
	CityID    *uint
}

// EditInput carries the editable profile fields; an update overwrites all
// of them.
type EditInput = RegisterInput

// Register creates a user and returns the new id. A referenced city must
// exist, and the check and the insert share one transaction.
func (s *UserService) Register(in RegisterInput) (uint, error) {
	user := &model.User{
		Name:      in.Name,
		Surname:   in.Surname,
		BirthDate: in.BirthDate,
		Gender:    in.Gender,
		Interests: in.Interests,
		CityID:    in.CityID,
	}

	err := s.tx(func(users UserRepo, cities CityRepo) error {
		if in.CityID != nil {
			if _, err := cities.GetByID(*in.CityID); err != nil {
				return err
			}
		}
		return users.Create(user)
	})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetUser loads a user's profile page data: the user with city and region,
// plus their friend list.
func (s *UserService) GetUser(id uint) (*model.User, []model.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	friends, err := s.repo.FriendsOf(id)
	if err != nil {
		return nil, nil, err
	}

	return user, friends, nil
}

// UpdateUser overwrites the editable fields of an existing user. The fetch
// and the save run in one transaction so a concurrent delete cannot slip
// between them.
func (s *UserService) UpdateUser(id uint, in EditInput) error {
	return s.tx(func(users UserRepo, cities CityRepo) error {
		user, err := users.GetByID(id)
		if err != nil {
			return err
		}
		if in.CityID != nil {
			if _, err := cities.GetByID(*in.CityID); err != nil {
				return err
			}
		}

		user.Name = in.Name
		user.Surname = in.Surname
		user.BirthDate = in.BirthDate
		user.Gender = in.Gender
		user.Interests = in.Interests
		user.CityID = in.CityID
		user.City = nil

		return users.Save(user)
	})
}

// DeleteUser removes the user row. Friendship edges pointing at the id are
// left to the database.
func (s *UserService) DeleteUser(id uint) error {
	return s.tx(func(users UserRepo, _ CityRepo) error {
		return users.Delete(id)
	})
}

// Find runs a user search filter and returns one page plus the total.
func (s *UserService) Find(f *filter.UserFilter, page pagination.Pageable) ([]model.User, int64, error) {
	return s.repo.Find(f.ToSpecification(), f.Joins(), page)
}

// GetFriends searches within a user's friend list under the same criteria
// as a general search. Fails with the repository's not-found error when the
// user does not exist.
func (s *UserService) GetFriends(userID uint, f *filter.UserFilter, page pagination.Pageable) ([]model.User, int64, error) {
	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, 0, err
	}

	ff := &filter.FriendFilter{UserFilter: *f, UserID: userID}
	return s.repo.Find(ff.ToSpecification(), ff.Joins(), page)
}

// GetCandidates searches users the given user could befriend: everybody
// matching the criteria except the user and their current friends.
func (s *UserService) GetCandidates(userID uint, f *filter.UserFilter, page pagination.Pageable) ([]model.User, int64, error) {
	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, 0, err
	}

	cf := &filter.CandidateFilter{UserFilter: *f, UserID: userID}
	return s.repo.Find(cf.ToSpecification(), cf.Joins(), page)
}

// AddFriend links two existing users. The existence checks and the insert
// share one transaction; after it succeeds each user sees the other in
// their friend list.
func (s *UserService) AddFriend(userID, friendID uint) error {
	return s.tx(func(users UserRepo, _ CityRepo) error {
		if _, err := users.GetByID(userID); err != nil {
			return err
		}
		if _, err := users.GetByID(friendID); err != nil {
			return err
		}
		return users.AddFriend(userID, friendID)
	})
}

// DeleteFriend unlinks two users in both directions.
func (s *UserService) DeleteFriend(userID, friendID uint) error {
	return s.tx(func(users UserRepo, _ CityRepo) error {
		if _, err := users.GetByID(userID); err != nil {
			return err
		}
		return users.DeleteFriend(userID, friendID)
	})
}
