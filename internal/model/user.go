package model

import (
	"fmt"
	"strings"
	"time"
)

// Gender is stored as its string code.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ParseGender maps a request parameter onto a Gender. Anything outside the
// known set comes back empty, which downstream filters treat as "no
// constraint".
func ParseGender(s string) Gender {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return ""
	}
}

// User is a profile page owner.
// Name and surname are required, 1-45 chars; interests are bounded at 512.
// Friendships live in a separate edge table, see Friendship.
type User struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"type:varchar(45);not null"`
	Surname   string     `gorm:"type:varchar(45);not null"`
	BirthDate *time.Time `gorm:"type:date"`
	Gender    Gender     `gorm:"type:varchar(8)"`
	Interests string     `gorm:"type:varchar(512)"`
	CityID    *uint      `gorm:"index"`
	City      *City      `gorm:"foreignKey:CityID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "user" }

// Fio is the display name: "Name Surname".
func (u *User) Fio() string {
	return fmt.Sprintf("%s %s", u.Name, u.Surname)
}

// Age returns full years since BirthDate, nil when the birth date is not set.
func (u *User) Age() *int {
	if u.BirthDate == nil {
		return nil
	}
	now := time.Now()
	years := now.Year() - u.BirthDate.Year()
	if now.Month() < u.BirthDate.Month() ||
		(now.Month() == u.BirthDate.Month() && now.Day() < u.BirthDate.Day()) {
		years--
	}
	return &years
}
