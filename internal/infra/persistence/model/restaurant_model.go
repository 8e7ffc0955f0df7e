package model

import "time"

// RestaurantModel mirrors the 'restaurants' table. Hours holds the weekly hours as JSON text.
type RestaurantModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(200);not null"`
	City      string `gorm:"type:varchar(100);not null;index"`
	Cuisine   string `gorm:"type:varchar(100);not null;index"`
	Price     string `gorm:"type:varchar(8)"`
	Address   string `gorm:"type:varchar(255)"`
	Tables    int    `gorm:"not null;default:5"`
	Hours     string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
