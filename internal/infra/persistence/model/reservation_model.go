package model

import "time"

// ReservationModel mirrors the 'reservations' table. Rows are counted per
// (restaurant_id, date, time) when booking, hence the composite index.
type ReservationModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64  `gorm:"not null;index:idx_reservations_slot,priority:1"`
	UserID       *int64 `gorm:"index"`
	Name         string `gorm:"type:varchar(100);not null"`
	PartySize    int    `gorm:"not null"`
	Date         string `gorm:"type:varchar(10);not null;index:idx_reservations_slot,priority:2"`
	Time         string `gorm:"type:varchar(5);not null;index:idx_reservations_slot,priority:3"`
	CreatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
