package model

// City is a reference entity users point at from their profile.
type City struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"type:varchar(100);not null;index"`
	RegionID *uint   `gorm:"index"`
	Region   *Region `gorm:"foreignKey:RegionID"`
}

func (City) TableName() string { return "city" }

// Region groups cities.
type Region struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (Region) TableName() string { return "region" }
