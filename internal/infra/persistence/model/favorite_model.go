package model

import "time"

// FavoriteModel mirrors the 'favorites' table. The composite key keeps each pair unique.
type FavoriteModel struct {
	UserID       int64 `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt    time.Time

	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
