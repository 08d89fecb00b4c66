package handler

import (
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-network/internal/model"
	"social-network/pkg/pagination"
)

// fakeUserRepo is an in-memory user store for handler tests. Predicate
// compilation is covered by the specification and filter tests, so Find
// ignores the predicate and returns the whole collection.
type fakeUserRepo struct {
	users  map[uint]*model.User
	edges  [][2]uint
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Save(user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Find(_ clause.Expression, _ []string, page pagination.Pageable) ([]model.User, int64, error) {
	ids := make([]uint, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := make([]model.User, 0, len(ids))
	for _, id := range ids {
		all = append(all, *f.users[id])
	}

	total := int64(len(all))
	offset := page.Offset()
	if offset >= len(all) {
		return []model.User{}, total, nil
	}
	end := offset + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeUserRepo) FriendsOf(userID uint) ([]model.User, error) {
	friends := make([]model.User, 0)
	for _, edge := range f.edges {
		var friendID uint
		switch userID {
		case edge[0]:
			friendID = edge[1]
		case edge[1]:
			friendID = edge[0]
		default:
			continue
		}
		if friend, ok := f.users[friendID]; ok {
			friends = append(friends, *friend)
		}
	}
	return friends, nil
}

func (f *fakeUserRepo) AddFriend(userID, friendID uint) error {
	f.edges = append(f.edges, [2]uint{userID, friendID})
	return nil
}

func (f *fakeUserRepo) DeleteFriend(userID, friendID uint) error {
	kept := f.edges[:0]
	for _, edge := range f.edges {
		if (edge[0] == userID && edge[1] == friendID) ||
			(edge[0] == friendID && edge[1] == userID) {
			continue
		}
		kept = append(kept, edge)
	}
	f.edges = kept
	return nil
}

// fakeCityRepo is an in-memory city store for handler tests.
type fakeCityRepo struct {
	cities map[uint]*model.City
}

func newFakeCityRepo(cities ...*model.City) *fakeCityRepo {
	f := &fakeCityRepo{cities: make(map[uint]*model.City)}
	for _, city := range cities {
		f.cities[city.ID] = city
	}
	return f
}

func (f *fakeCityRepo) GetByID(id uint) (*model.City, error) {
	city, ok := f.cities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return city, nil
}

func (f *fakeCityRepo) Find(_ clause.Expression, page pagination.Pageable) ([]model.City, int64, error) {
	ids := make([]uint, 0, len(f.cities))
	for id := range f.cities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := make([]model.City, 0, len(ids))
	for _, id := range ids {
		all = append(all, *f.cities[id])
	}

	total := int64(len(all))
	if page.Offset() >= len(all) {
		return []model.City{}, total, nil
	}
	end := page.Offset() + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[page.Offset():end], total, nil
}
