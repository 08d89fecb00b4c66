package response

import (
	"social-network/internal/model"
)

// UserInfo is a user row in any list (search results, friend lists).
type UserInfo struct {
	ID     uint         `json:"id"`
	Fio    string       `json:"fio"`
	Gender model.Gender `json:"gender,omitempty"`
	Age    *int         `json:"age,omitempty"`
}

// FilterUserInfo converts a user into its list representation.
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:     user.ID,
		Fio:    user.Fio(),
		Gender: user.Gender,
		Age:    user.Age(),
	}
}

// FilterUserList converts a slice of users into list rows.
func FilterUserList(users []model.User) []*UserInfo {
	infos := make([]*UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, FilterUserInfo(&users[i]))
	}
	return infos
}

// CityInfo is a city row with its region name attached when present.
type CityInfo struct {
	Name       string `json:"name"`
	RegionName string `json:"regionName,omitempty"`
}

// FilterCityInfo converts a city into its list representation.
func FilterCityInfo(city *model.City) *CityInfo {
	if city == nil {
		return nil
	}

	info := &CityInfo{Name: city.Name}
	if city.Region != nil {
		info.RegionName = city.Region.Name
	}
	return info
}

// FilterCityList converts a slice of cities into list rows.
func FilterCityList(cities []model.City) []*CityInfo {
	infos := make([]*CityInfo, 0, len(cities))
	for i := range cities {
		infos = append(infos, FilterCityInfo(&cities[i]))
	}
	return infos
}

// UserPage is the full profile page of a user.
type UserPage struct {
	ID        uint         `json:"id"`
	Fio       string       `json:"fio"`
	Age       *int         `json:"age,omitempty"`
	Gender    model.Gender `json:"gender,omitempty"`
	Interests string       `json:"interests,omitempty"`
	City      *CityInfo    `json:"city,omitempty"`
	Friends   []*UserInfo  `json:"friends"`
}

// BuildUserPage assembles a profile page from a user and their friends.
func BuildUserPage(user *model.User, friends []model.User) *UserPage {
	if user == nil {
		return nil
	}

	return &UserPage{
		ID:        user.ID,
		Fio:       user.Fio(),
		Age:       user.Age(),
		Gender:    user.Gender,
		Interests: user.Interests,
		City:      FilterCityInfo(user.City),
		Friends:   FilterUserList(friends),
	}
}
