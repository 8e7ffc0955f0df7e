package model

import "time"

// ReviewModel mirrors the 'reviews' table. A user reviews a restaurant at most once.
type ReviewModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UserID       int64  `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant,priority:1"`
	RestaurantID int64  `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant,priority:2;index"`
	Rating       int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	ReviewText   string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&RestaurantModel{},
		&UserModel{},
		&ReservationModel{},
		&FavoriteModel{},
		&ReviewModel{},
	}
}
