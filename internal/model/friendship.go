package model

import "time"

// Friendship is one directed edge of the friend relation. AddFriend stores a
// single (user, friend) row; readers treat the relation as undirected by
// checking both directions, and DeleteFriend removes rows in both directions.
// Rows are deleted physically so a removed friend can be added again.
type Friendship struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index"`
	FriendID  uint `gorm:"not null;index"`
	CreatedAt time.Time
}

func (Friendship) TableName() string { return "friendship" }
